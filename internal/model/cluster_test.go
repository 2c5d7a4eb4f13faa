package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testClusters = []ClusterDefinition{
	{Name: "science-cluster-a", Subjects: []string{"mathematics", "english", "physics", "chemistry"}},
	{Name: "arts-cluster-a", Subjects: []string{"english", "literature", "government", "crs"}},
}

func TestMatchCluster(t *testing.T) {
	cluster, ok := MatchCluster("quiz-science-cluster-a", testClusters)
	assert.True(t, ok)
	assert.Equal(t, "science-cluster-a", cluster.Name)

	cluster, ok = MatchCluster("QUIZ-ARTS-CLUSTER-A-page", testClusters)
	assert.True(t, ok)
	assert.Equal(t, "arts-cluster-a", cluster.Name)

	_, ok = MatchCluster("quiz-physics", testClusters)
	assert.False(t, ok)

	_, ok = MatchCluster("", testClusters)
	assert.False(t, ok)
}

func TestSplitSubjectList(t *testing.T) {
	assert.Equal(t, []string{"physics", "chemistry"}, SplitSubjectList("physics, chemistry"))
	assert.Equal(t, []string{"english"}, SplitSubjectList(" english ,, "))
	assert.Empty(t, SplitSubjectList(""))
}

func TestQuestionRecordOptionCount(t *testing.T) {
	rec := QuestionRecord{Options: map[ChoiceKey]string{
		ChoiceA: "a",
		ChoiceB: " ",
		ChoiceC: "c",
	}}
	assert.Equal(t, 2, rec.OptionCount())
	assert.Equal(t, "", rec.Option(ChoiceD))
}
