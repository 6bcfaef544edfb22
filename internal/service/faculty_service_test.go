package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCounter struct {
	count int
	calls int
}

func (m *mockCounter) CountByFaculty(_ context.Context, _ string) (int, error) {
	m.calls++
	return m.count, nil
}

func TestOverviewAggregatesCounts(t *testing.T) {
	courses := &mockCounter{count: 3}
	classes := &mockCounter{count: 7}
	reports := &mockCounter{count: 12}
	svc := NewFacultyService(courses, classes, reports, nil, 0, nil)

	overview, err := svc.Overview(context.Background(), "ICT")
	require.NoError(t, err)
	assert.Equal(t, 3, overview.CoursesCount)
	assert.Equal(t, 7, overview.ClassesCount)
	assert.Equal(t, 12, overview.ReportsCount)
}

func TestOverviewWithoutCacheQueriesEveryCall(t *testing.T) {
	courses := &mockCounter{count: 1}
	classes := &mockCounter{count: 1}
	reports := &mockCounter{count: 1}
	svc := NewFacultyService(courses, classes, reports, nil, 0, nil)

	_, err := svc.Overview(context.Background(), "ICT")
	require.NoError(t, err)
	_, err = svc.Overview(context.Background(), "ICT")
	require.NoError(t, err)

	assert.Equal(t, 2, courses.calls)
	assert.Equal(t, 2, classes.calls)
	assert.Equal(t, 2, reports.calls)
}
