package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"utme_prep_backend/internal/config"
	"utme_prep_backend/internal/model"
	"utme_prep_backend/internal/util"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// FetchProvider 定义通用题库抓取接口，path 是归档内的相对路径
type FetchProvider interface {
	Fetch(ctx context.Context, path string) (string, error)
}

// HTTPFetchProvider 从原始文件托管地址按 URL 直接抓取
type HTTPFetchProvider struct {
	Config *config.ArchiveConfig
	Client *http.Client
}

func (p *HTTPFetchProvider) Fetch(ctx context.Context, path string) (string, error) {
	base := strings.TrimRight(p.Config.BaseURL, "/")
	fullURL := base + "/" + strings.TrimLeft(path, "/")
	if _, err := url.Parse(fullURL); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// MinioFetchProvider 从对象存储镜像抓取
type MinioFetchProvider struct {
	Config *config.ArchiveConfig
	Client *minio.Client
}

func NewMinioFetchProvider(cfg *config.ArchiveConfig) (*MinioFetchProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioFetchProvider{Config: cfg, Client: client}, nil
}

func (p *MinioFetchProvider) Fetch(ctx context.Context, path string) (string, error) {
	obj, err := p.Client.GetObject(ctx, p.Config.MinioBucket, path, minio.GetObjectOptions{})
	if err != nil {
		return "", err
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// LocalFetchProvider 本地目录实现，主要用于开发与测试
type LocalFetchProvider struct {
	Config *config.ArchiveConfig
}

func (p *LocalFetchProvider) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	body, err := os.ReadFile(filepath.Join(p.Config.LocalPath, filepath.FromSlash(path)))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetcherService 题库归档抓取服务。
// 每次抓取带独立超时；失败以 error 返回，由调用方决定降级策略。
type FetcherService struct {
	Provider FetchProvider
	Timeout  time.Duration
	cfg      *config.ArchiveConfig
}

func NewFetcherService(cfg *config.Config) *FetcherService {
	var provider FetchProvider
	switch cfg.Archive.Backend {
	case util.ArchiveBackendMinio:
		p, err := NewMinioFetchProvider(&cfg.Archive)
		if err == nil {
			provider = p
		}
	case util.ArchiveBackendLocal:
		provider = &LocalFetchProvider{Config: &cfg.Archive}
	}

	if provider == nil {
		provider = &HTTPFetchProvider{
			Config: &cfg.Archive,
			Client: &http.Client{Timeout: cfg.Archive.FetchTimeout},
		}
	}

	return &FetcherService{
		Provider: provider,
		Timeout:  cfg.Archive.FetchTimeout,
		cfg:      &cfg.Archive,
	}
}

// ArchivePath 拼出某周期、某科目文件在归档里的相对路径，
// 例如 period=3、physics → "archive/day-05-06/JAMB_Physics_Q1-35.txt"。
// 科目没有已知文件名映射时返回 ok=false。
func (s *FetcherService) ArchivePath(period model.Period, subject string) (string, bool) {
	filename, ok := s.cfg.SubjectFiles[strings.ToLower(subject)]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("archive/day-%s/%s", period.DayRange(), filename), true
}

// KnownSubject reports whether the subject has an archive filename mapping.
func (s *FetcherService) KnownSubject(subject string) bool {
	_, ok := s.cfg.SubjectFiles[strings.ToLower(subject)]
	return ok
}

// SubjectFilename returns the archive filename for a subject, or "".
func (s *FetcherService) SubjectFilename(subject string) string {
	return s.cfg.SubjectFiles[strings.ToLower(subject)]
}

// Fetch 抓取一份归档文件的原始文本
func (s *FetcherService) Fetch(ctx context.Context, path string) (string, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()
	return s.Provider.Fetch(fetchCtx, path)
}
