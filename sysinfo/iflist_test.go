package sysinfo

import (
	"encoding/binary"
	"testing"

	"github.com/hostwatch/agent/common"

	"github.com/stretchr/testify/assert"
)

// buildIfRecord assembles one dump record: an if_msghdr2 with the given
// type and counters, followed by a sockaddr_dl carrying the name.
func buildIfRecord(msgType byte, name string, rx, tx uint64) []byte {
	msgLen := offSdlData + len(name)
	rec := make([]byte, msgLen)
	binary.LittleEndian.PutUint16(rec[offMsgLen:], uint16(msgLen))
	rec[offMsgType] = msgType
	binary.LittleEndian.PutUint64(rec[offIbytes:], rx)
	binary.LittleEndian.PutUint64(rec[offObytes:], tx)
	rec[offSdlNlen] = byte(len(name))
	copy(rec[offSdlData:], name)
	return rec
}

func TestParseInterfaceDump(t *testing.T) {
	var buf []byte
	buf = append(buf, buildIfRecord(rtmIFINFO2, "lo0", 1024, 2048)...)
	buf = append(buf, buildIfRecord(rtmIFINFO2, "en0", 5000000, 300000)...)

	counters, err := ParseInterfaceDump(buf)
	assert.NoError(t, err)
	assert.Len(t, counters, 2)
	assert.Equal(t, "lo0", counters[0].Name)
	assert.Equal(t, uint64(1024), counters[0].RxBytes)
	assert.Equal(t, uint64(2048), counters[0].TxBytes)
	assert.Equal(t, "en0", counters[1].Name)
	assert.Equal(t, uint64(5000000), counters[1].RxBytes)
	assert.Equal(t, uint64(300000), counters[1].TxBytes)
}

func TestParseInterfaceDumpSkipsOtherRecords(t *testing.T) {
	// a short non-IFINFO2 record between two interface records
	other := make([]byte, 16)
	binary.LittleEndian.PutUint16(other[offMsgLen:], 16)
	other[offMsgType] = 0x0e

	var buf []byte
	buf = append(buf, buildIfRecord(rtmIFINFO2, "en0", 10, 20)...)
	buf = append(buf, other...)
	buf = append(buf, buildIfRecord(rtmIFINFO2, "en1", 30, 40)...)

	counters, err := ParseInterfaceDump(buf)
	assert.NoError(t, err)
	assert.Len(t, counters, 2)
	assert.Equal(t, "en0", counters[0].Name)
	assert.Equal(t, "en1", counters[1].Name)
}

func TestParseInterfaceDumpEmpty(t *testing.T) {
	counters, err := ParseInterfaceDump(nil)
	assert.NoError(t, err)
	assert.Empty(t, counters)
}

func TestParseInterfaceDumpShortBuffer(t *testing.T) {
	_, err := ParseInterfaceDump([]byte{0x01, 0x02})
	assert.ErrorIs(t, err, common.ErrShortBuffer)
}

func TestParseInterfaceDumpBadLength(t *testing.T) {
	// declared length overruns the buffer
	rec := buildIfRecord(rtmIFINFO2, "en0", 1, 2)
	binary.LittleEndian.PutUint16(rec[offMsgLen:], uint16(len(rec)+100))
	_, err := ParseInterfaceDump(rec)
	assert.ErrorIs(t, err, common.ErrBadRecordLength)

	// zero length would never advance
	_, err = ParseInterfaceDump(make([]byte, 8))
	assert.ErrorIs(t, err, common.ErrBadRecordLength)
}

func TestParseInterfaceDumpTruncatedIfInfo(t *testing.T) {
	// an IFINFO2 record too short to hold the header and sockaddr
	rec := make([]byte, 32)
	binary.LittleEndian.PutUint16(rec[offMsgLen:], 32)
	rec[offMsgType] = rtmIFINFO2
	_, err := ParseInterfaceDump(rec)
	assert.ErrorIs(t, err, common.ErrBadRecordLength)
}

func TestParseInterfaceDumpNameOverrun(t *testing.T) {
	rec := buildIfRecord(rtmIFINFO2, "en0", 1, 2)
	rec[offSdlNlen] = 200
	_, err := ParseInterfaceDump(rec)
	assert.ErrorIs(t, err, common.ErrBadRecordLength)
}
