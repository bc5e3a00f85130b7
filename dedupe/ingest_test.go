package dedupe

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/stretchr/testify/assert"
)

const (
	testR1 = "@read1/1\nACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGT\n+\nIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIII\n"
	testR2 = "@read1/2\nTGCATGCATGCATGCATGCATGCATGCATGCATGCATGCATGCATGCATGCATGCATGCA\n+\nIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIII\n"
)

func TestReadPairsHappyPath(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	r1Path := filepath.Join(tempDir, "in_R1.fastq")
	r2Path := filepath.Join(tempDir, "in_R2.fastq")
	assert.Nil(t, ioutil.WriteFile(r1Path, []byte(testR1), 0644))
	assert.Nil(t, ioutil.WriteFile(r2Path, []byte(testR2), 0644))

	pairs, err := ReadPairs(context.Background(), Opts{Read1Path: r1Path, Read2Path: r2Path})
	assert.Nil(t, err)
	if assert.Len(t, pairs, 1) {
		assert.Equal(t, "@read1/1", pairs[0].R1().Name)
		assert.Equal(t, 60, pairs[0].R1().Len())
		assert.Equal(t, 1, pairs[0].CopyNumber)
	}
}

func TestReadPairsRejectsNameMismatch(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	r1Path := filepath.Join(tempDir, "in_R1.fastq")
	r2Path := filepath.Join(tempDir, "in_R2.fastq")
	assert.Nil(t, ioutil.WriteFile(r1Path, []byte(testR1), 0644))
	mismatched := "@totallydifferent\nACGT\n+\nIIII\n"
	assert.Nil(t, ioutil.WriteFile(r2Path, []byte(mismatched), 0644))

	_, err := ReadPairs(context.Background(), Opts{Read1Path: r1Path, Read2Path: r2Path})
	assert.True(t, Is(InputFormat, err))
}

func TestReadPairsRejectsCountMismatch(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	r1Path := filepath.Join(tempDir, "in_R1.fastq")
	r2Path := filepath.Join(tempDir, "in_R2.fastq")
	extraR1 := testR1 + testR1
	assert.Nil(t, ioutil.WriteFile(r1Path, []byte(extraR1), 0644))
	assert.Nil(t, ioutil.WriteFile(r2Path, []byte(testR2), 0644))

	_, err := ReadPairs(context.Background(), Opts{Read1Path: r1Path, Read2Path: r2Path})
	assert.True(t, Is(ReadCountMismatch, err))
}

func TestReadPairsRejectsBadSuffix(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	r1Path := filepath.Join(tempDir, "in_R1.txt")
	r2Path := filepath.Join(tempDir, "in_R2.fastq")
	assert.Nil(t, ioutil.WriteFile(r1Path, []byte(testR1), 0644))
	assert.Nil(t, ioutil.WriteFile(r2Path, []byte(testR2), 0644))

	_, err := ReadPairs(context.Background(), Opts{Read1Path: r1Path, Read2Path: r2Path})
	assert.True(t, Is(InputFormat, err))
}
