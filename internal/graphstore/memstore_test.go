package graphstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemStoreAssessImpactDirectAndTransitive(t *testing.T) {
	store := NewMemStore()
	files := []FileNode{{Path: "a.go"}, {Path: "b.go"}, {Path: "c.go"}, {Path: "d.go"}}
	edges := []Edge{
		{SourcePath: "a.go", TargetPath: "b.go"},
		{SourcePath: "b.go", TargetPath: "c.go"},
	}
	require.NoError(t, store.Replace(context.Background(), files, edges))

	result, err := store.AssessImpact(context.Background(), []string{"c.go"})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"b.go"}, result.DirectlyAffected)
	require.ElementsMatch(t, []string{"a.go", "b.go"}, result.TransitivelyAffected)
	require.InDelta(t, 0.5, result.RiskScore, 0.001)
}

func TestMemStoreAssessImpactNoDependents(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.Replace(context.Background(), []FileNode{{Path: "a.go"}}, nil))

	result, err := store.AssessImpact(context.Background(), []string{"a.go"})
	require.NoError(t, err)
	require.Empty(t, result.DirectlyAffected)
	require.Empty(t, result.TransitivelyAffected)
}

func TestMemStoreStats(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.Replace(context.Background(), []FileNode{{Path: "a.go"}, {Path: "b.go"}},
		[]Edge{{SourcePath: "a.go", TargetPath: "b.go"}}))

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, stats.FileCount)
	require.Equal(t, 1, stats.EdgeCount)
}

func TestFromDependencyGraphDeduplicatesFiles(t *testing.T) {
	files, edges := FromDependencyGraph(map[string][]string{
		"a.go": {"b.go", "c.go"},
		"b.go": {"c.go"},
	})
	require.Len(t, files, 3)
	require.Len(t, edges, 3)
}
