package util

import "errors"

var (
	// ErrResolutionExhausted 五个来源层级全部为空。内置样题层在正常运行下
	// 永远非空，走到这里意味着程序缺陷而不是运行环境问题。
	ErrResolutionExhausted = errors.New("all question source tiers exhausted")

	ErrUnknownSubject = errors.New("subject has no archive filename mapping")
	ErrEmptyDocument  = errors.New("document contains no parseable questions")
)
