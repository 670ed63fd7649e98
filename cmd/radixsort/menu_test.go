package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuSession(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.txt")
	// empty print, load, print, sort, add, rejected add, delete, missing
	// delete, save, two invalid choices, exit
	input := strings.Join([]string{
		"2",
		"1 " + fixturePath("words.txt"),
		"2",
		"3",
		"5 Banana",
		"5 7up",
		"6 apple",
		"6 nothere",
		"7 " + target,
		"9 x",
		"8",
	}, "\n")
	out, err := runCommand(t, input, "menu")
	require.NoError(t, err)

	assert.Contains(t, out, "The list is empty.")
	assert.Contains(t, out, "File has been successfully read.")
	assert.Contains(t, out, "Strings before sorting:\nbanana\napple\nCherry\nzebra_2\nAardvark\nx0\nxu\n")
	assert.Contains(t, out, "Strings sorted using Radix Sort.")
	assert.Contains(t, out, `Word "Banana" added to the list and sorted.`)
	assert.Contains(t, out, `Note: line "7up" starting with a number. Skipping.`)
	assert.Contains(t, out, `Word "apple" deleted from the list.`)
	assert.Contains(t, out, `Word "nothere" not found in the list.`)
	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Please enter a valid option."))
	assert.True(t, strings.HasSuffix(out, "Exiting the program.\n"))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Aardvark\nBanana\nCherry\nbanana\nx0\nxu\nzebra_2\n", string(data))
}

func TestMenuEndsAtEOF(t *testing.T) {
	out, err := runCommand(t, "3\n4\n", "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Strings sorted using Radix Sort.")
	assert.Contains(t, out, "The list is empty.")
	assert.NotContains(t, out, "Exiting the program.")
}

func TestMenuLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	out, err := runCommand(t, "1 "+missing+" 8", "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Error: opening word file "+missing)
	assert.NotContains(t, out, "File has been successfully read.")
}
