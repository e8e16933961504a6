package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadtools/timetable-viewer/pkg/model"
)

func testEntries() []*model.RosterEntry {
	return []*model.RosterEntry{
		{Course: model.CourseIdentifier{Subject: "CS101", Division: "A"}, Rolls: []string{"21BCM014", "21BCM015"}},
		{Course: model.CourseIdentifier{Subject: "CS101", Division: "B"}, Rolls: []string{"21BCM099"}},
		{Course: model.CourseIdentifier{Subject: "MGT205"}, Rolls: []string{"21BCM014"}},
	}
}

func TestResolve(t *testing.T) {
	idx := BuildIndex(testEntries())

	courses, err := idx.Resolve("21BCM014")
	require.NoError(t, err)
	assert.Equal(t, []model.CourseIdentifier{
		{Subject: "CS101", Division: "A"},
		{Subject: "MGT205"},
	}, courses)

	courses, err = idx.Resolve("21BCM099")
	require.NoError(t, err)
	assert.Equal(t, []model.CourseIdentifier{{Subject: "CS101", Division: "B"}}, courses)
}

func TestResolveNotEnrolled(t *testing.T) {
	idx := BuildIndex(testEntries())
	_, err := idx.Resolve("99XYZ000")
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestResolveDeterministicOrder(t *testing.T) {
	// Same directory listing yields the same course order on every build.
	first := BuildIndex(testEntries())
	second := BuildIndex(testEntries())

	a, err := first.Resolve("21BCM014")
	require.NoError(t, err)
	b, err := second.Resolve("21BCM014")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, first.Courses(), second.Courses())
}

func TestBuildIndexDuplicateRolls(t *testing.T) {
	entries := []*model.RosterEntry{
		{Course: model.CourseIdentifier{Subject: "CS101", Division: "A"}, Rolls: []string{"21BCM014", "21BCM014"}},
	}
	idx := BuildIndex(entries)
	courses, err := idx.Resolve("21BCM014")
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestEnrolled(t *testing.T) {
	idx := BuildIndex(testEntries())
	assert.True(t, idx.Enrolled(model.CourseIdentifier{Subject: "CS101", Division: "A"}, "21BCM014"))
	assert.False(t, idx.Enrolled(model.CourseIdentifier{Subject: "CS101", Division: "B"}, "21BCM014"))
}
