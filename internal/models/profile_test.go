package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestExperienceHeadInsertion(t *testing.T) {
	var p Profile
	first := Experience{ID: uuid.New(), Title: "First"}
	second := Experience{ID: uuid.New(), Title: "Second"}

	p.AddExperience(first)
	p.AddExperience(second)

	assert.Equal(t, "Second", p.Experience[0].Title)
	assert.Equal(t, "First", p.Experience[1].Title)
}

func TestRemoveExperiencePreservesOrder(t *testing.T) {
	var p Profile
	a := Experience{ID: uuid.New(), Title: "A"}
	b := Experience{ID: uuid.New(), Title: "B"}
	c := Experience{ID: uuid.New(), Title: "C"}
	p.AddExperience(a)
	p.AddExperience(b)
	p.AddExperience(c)

	assert.True(t, p.RemoveExperience(b.ID.String()))
	assert.Len(t, p.Experience, 2)
	assert.Equal(t, "C", p.Experience[0].Title)
	assert.Equal(t, "A", p.Experience[1].Title)
}

func TestRemoveExperienceUnknownID(t *testing.T) {
	var p Profile
	p.AddExperience(Experience{ID: uuid.New(), Title: "Only"})

	assert.False(t, p.RemoveExperience(uuid.NewString()))
	assert.False(t, p.RemoveExperience("garbage"))
	assert.Len(t, p.Experience, 1)
}

func TestEducationSequence(t *testing.T) {
	var p Profile
	old := Education{ID: uuid.New(), School: "Old"}
	recent := Education{ID: uuid.New(), School: "Recent"}
	p.AddEducation(old)
	p.AddEducation(recent)

	assert.Equal(t, "Recent", p.Education[0].School)
	assert.True(t, p.RemoveEducation(old.ID.String()))
	assert.Len(t, p.Education, 1)
	assert.Equal(t, "Recent", p.Education[0].School)
}
