package day07_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day07"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

func TestDirSizes(t *testing.T) {
	sizes, err := day07.DirSizes(example)
	require.NoError(t, err)

	assert.Equal(t, 584, sizes["/a/e"])
	assert.Equal(t, 94853, sizes["/a"])
	assert.Equal(t, 24933642, sizes["/d"])
	assert.Equal(t, 48381165, sizes["/"])
}

func TestDirSizes_CdAboveRoot(t *testing.T) {
	_, err := day07.DirSizes("$ cd /\n$ cd ..\n")
	assert.ErrorIs(t, err, day07.ErrBadSession)
}

func TestDirSizes_BadLine(t *testing.T) {
	_, err := day07.DirSizes("$ cd /\nnot a listing\n")
	assert.ErrorIs(t, err, day07.ErrBadSession)
}

func TestSolve(t *testing.T) {
	p1, p2, err := day07.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "95437", p1)
	assert.Equal(t, "24933642", p2)
}
