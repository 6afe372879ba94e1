package rendering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	day := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Jane_Doe_2026_09_01.pdf", Filename("Jane Doe", day))
	assert.Equal(t, "J_rgen_M_ller_2026_09_01.pdf", Filename("Jürgen Müller", day))
	assert.Equal(t, "a_b_c_2026_09_01.pdf", Filename("a/b\\c", day))
	assert.Equal(t, "resume_2026_09_01.pdf", Filename("", day))
}
