package depgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCExtensionOnlyMatchesDotC(t *testing.T) {
	require.True(t, cExtension("main.c"))
	require.False(t, cExtension("main.cpp"))
	require.False(t, cExtension("main.h"))
}

func TestCppExtensionExcludesDotC(t *testing.T) {
	require.True(t, cppExtension("main.cpp"))
	require.True(t, cppExtension("widget.hpp"))
	require.True(t, cppExtension("widget.h"))
	require.False(t, cppExtension("main.c"))
}
