package service

import (
	"testing"

	"utme_prep_backend/internal/config"
	"utme_prep_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testValidator(expected int) *ValidatorService {
	return NewValidatorService(&config.Config{
		Quiz: config.QuizConfig{ExpectedPerSubject: expected},
	})
}

func fullRecord(id int) model.QuestionRecord {
	return model.QuestionRecord{
		ID:      id,
		Subject: "Physics",
		Text:    "Q?",
		Options: map[model.ChoiceKey]string{
			model.ChoiceA: "a", model.ChoiceB: "b",
			model.ChoiceC: "c", model.ChoiceD: "d",
		},
		Answer: model.ChoiceA,
	}
}

func TestStrictGateRejectsPartialOptions(t *testing.T) {
	v := testValidator(35)

	rec := model.QuestionRecord{
		Text:    "Q",
		Options: map[model.ChoiceKey]string{model.ChoiceA: "x", model.ChoiceB: "y"},
		Answer:  model.ChoiceA,
	}

	assert.False(t, v.IsAcceptable(rec))
	assert.True(t, v.IsAcceptableLoose(rec))
}

func TestStrictGate(t *testing.T) {
	v := testValidator(35)

	assert.True(t, v.IsAcceptable(fullRecord(1)))

	blankText := fullRecord(2)
	blankText.Text = "   "
	assert.False(t, v.IsAcceptable(blankText))

	blankOption := fullRecord(3)
	blankOption.Options[model.ChoiceC] = ""
	assert.False(t, v.IsAcceptable(blankOption))

	badAnswer := fullRecord(4)
	badAnswer.Answer = "E"
	assert.False(t, v.IsAcceptable(badAnswer))

	noAnswer := fullRecord(5)
	noAnswer.Answer = ""
	assert.False(t, v.IsAcceptable(noAnswer))
}

func TestLooseGate(t *testing.T) {
	v := testValidator(35)

	oneOption := model.QuestionRecord{
		Text:    "Q",
		Options: map[model.ChoiceKey]string{model.ChoiceA: "x"},
		Answer:  model.ChoiceA,
	}
	assert.False(t, v.IsAcceptableLoose(oneOption))

	answerOutsideOptions := model.QuestionRecord{
		Text:    "Q",
		Options: map[model.ChoiceKey]string{model.ChoiceA: "x", model.ChoiceB: "y"},
		Answer:  model.ChoiceD,
	}
	assert.False(t, v.IsAcceptableLoose(answerOutsideOptions))
}

func TestFilterAcceptablePreservesOrder(t *testing.T) {
	v := testValidator(35)

	broken := fullRecord(2)
	broken.Answer = ""

	out := v.FilterAcceptable([]model.QuestionRecord{fullRecord(1), broken, fullRecord(3)})
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 3, out[1].ID)
}

func TestValidateDocumentPassed(t *testing.T) {
	v := testValidator(2)

	doc := `1. First?
A. a
B. b
C. c
D. d
Answer: A
2. Second?
A. a
B. b
C. c
D. d
Answer: B
`

	report := v.ValidateDocument("JAMB_Physics_Q1-35.txt", doc)
	assert.Equal(t, "Physics", report.Subject)
	assert.Equal(t, 2, report.QuestionCount)
	assert.Equal(t, 2, report.AcceptedCount)
	assert.Empty(t, report.Errors)
	assert.Equal(t, ReportPassed, report.Status)
}

func TestValidateDocumentPartial(t *testing.T) {
	v := testValidator(35)

	doc := `1. Same text?
A. a
B. b
Answer: A
2. Same text?
A. a
B. b
C. c
D. d
3. Fine?
A. a
B. b
C. c
D. d
Answer: C
`

	report := v.ValidateDocument("chem_set.txt", doc)
	assert.Equal(t, "Chemistry", report.Subject)
	assert.Equal(t, 3, report.QuestionCount)

	// 2 号缺答案是错误；2 号重复 1 号题干、不足 35 题是警告
	assert.NotEmpty(t, report.Errors)
	assert.NotEmpty(t, report.Warnings)
	assert.Equal(t, ReportPartial, report.Status)
	assert.Equal(t, 2, report.AcceptedCount)
}

func TestValidateDocumentFailed(t *testing.T) {
	v := testValidator(35)

	report := v.ValidateDocument("unknown_stuff.txt", "no questions here at all")
	assert.Equal(t, 0, report.QuestionCount)
	assert.Equal(t, ReportFailed, report.Status)
	assert.Equal(t, "Unknown Stuff", report.Subject)
}
