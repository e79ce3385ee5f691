package sysinfo

import (
	"encoding/binary"

	"github.com/hostwatch/agent/common"
)

// Layout of a NET_RT_IFLIST2 routing dump on darwin. Each record is an
// if_msghdr2 followed by a sockaddr_dl carrying the interface name. All
// offsets are against the 64-bit struct layout.
const (
	rtmIFINFO2 = 0x12

	offMsgLen  = 0   // ifm_msglen, uint16
	offMsgType = 3   // ifm_type, uint8
	offIbytes  = 96  // if_data64.ifi_ibytes, uint64
	offObytes  = 104 // if_data64.ifi_obytes, uint64

	sizeofIfMsghdr2 = 160
	offSdlNlen      = sizeofIfMsghdr2 + 5 // sockaddr_dl sdl_nlen, uint8
	offSdlData      = sizeofIfMsghdr2 + 8 // sockaddr_dl sdl_data, the name
)

// ParseInterfaceDump walks the length-prefixed records of a routing
// interface dump and extracts the per-interface byte counters. Records
// that are not RTM_IFINFO2 are skipped by their declared length.
func ParseInterfaceDump(buf []byte) ([]InterfaceCounters, error) {
	var counters []InterfaceCounters

	for len(buf) > 0 {
		if len(buf) < 4 {
			return nil, common.ErrShortBuffer
		}
		msgLen := int(binary.LittleEndian.Uint16(buf[offMsgLen:]))
		if msgLen < 4 || msgLen > len(buf) {
			return nil, common.ErrBadRecordLength
		}

		record := buf[:msgLen]
		buf = buf[msgLen:]

		if record[offMsgType] != rtmIFINFO2 {
			continue
		}
		if msgLen < offSdlData {
			return nil, common.ErrBadRecordLength
		}

		nameLen := int(record[offSdlNlen])
		if offSdlData+nameLen > msgLen {
			return nil, common.ErrBadRecordLength
		}

		counters = append(counters, InterfaceCounters{
			Name:    string(record[offSdlData : offSdlData+nameLen]),
			RxBytes: binary.LittleEndian.Uint64(record[offIbytes:]),
			TxBytes: binary.LittleEndian.Uint64(record[offObytes:]),
		})
	}
	return counters, nil
}
