package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const vmStatOutput = `Mach Virtual Memory Statistics: (page size of 16384 bytes)
Pages free:                               37942.
Pages active:                            514424.
Pages inactive:                          505555.
Pages speculative:                         5767.
Pages throttled:                              0.
Pages wired down:                        115065.
Pages purgeable:                           2301.
"Translation faults":                 559883646.
Pages copy-on-write:                   23138921.
Pages zero filled:                    266385941.
Pages reactivated:                     53181864.
Pages purged:                           2907482.
File-backed pages:                       169707.
Anonymous pages:                         850272.
Pages stored in compressor:             1295259.
Pages occupied by compressor:            304387.
Decompressions:                        37692605.
Compressions:                          51908538.
Pageins:                               12125716.
Pageouts:                                301855.
Swapins:                                3383158.
Swapouts:                               3991591.
`

func TestParseVMStat(t *testing.T) {
	st, err := parseVMStat(vmStatOutput)
	assert.NoError(t, err)
	assert.Equal(t, uint64(16384), st.PageSize)
	assert.Equal(t, uint64(37942), st.FreePages)
	assert.Equal(t, uint64(514424), st.ActivePages)
	assert.Equal(t, uint64(505555), st.InactivePages)
	assert.Equal(t, uint64(115065), st.WiredPages)
	assert.Equal(t, uint64(304387), st.CompressedPages)
}

func TestParseVMStatNoHeader(t *testing.T) {
	_, err := parseVMStat("Pages free: 100.\n")
	assert.Error(t, err)
}

func TestParseVMStatGarbage(t *testing.T) {
	_, err := parseVMStat("not vm_stat output at all")
	assert.Error(t, err)
}
