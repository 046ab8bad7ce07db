package smcconfig

import (
	"net"

	"github.com/joshuapare/nandkit/internal/bitops"
	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/pkg/types"
)

// Decode validates and decodes a configuration record. A record whose
// checksum does not match is returned as ChecksumMismatch and nothing else
// is decoded.
func Decode(rec []byte) (types.ConfigBlock, error) {
	if err := Verify(rec); err != nil {
		return types.ConfigBlock{}, err
	}
	mac := make(net.HardwareAddr, format.ConfigMACSize)
	copy(mac, rec[format.ConfigMACOffset:])

	return types.ConfigBlock{
		Checksum:    StoredChecksum(rec),
		DVDRegion:   DVDRegion(uint16(rec[format.ConfigDVDOffset])),
		GameRegion:  GameRegion(bitops.U16BE(rec[format.ConfigGameOffset:])),
		VideoRegion: VideoRegion(uint16(rec[format.ConfigVideoOffset])),
		CPUFan:      Fan(rec[format.ConfigCPUFanOffset]),
		GPUFan:      Fan(rec[format.ConfigGPUFanOffset]),
		Temps: types.Temperatures{
			CPU:    temp(rec, format.ConfigCPUTempOffset),
			CPUMax: temp(rec, format.ConfigCPUMaxOffset),
			GPU:    temp(rec, format.ConfigGPUTempOffset),
			GPUMax: temp(rec, format.ConfigGPUMaxOffset),
			RAM:    temp(rec, format.ConfigRAMTempOffset),
			RAMMax: temp(rec, format.ConfigRAMMaxOffset),
		},
		MAC:       mac.String(),
		ResetCode: Reset(rec[format.ConfigResetOffset]),
	}, nil
}

// Fan decodes a fan override byte.
func Fan(raw byte) types.FanSpeed {
	return types.FanSpeed{
		Raw:      raw,
		Override: raw&format.FanOverrideBit != 0,
		Percent:  int(raw & format.FanPercentMask),
	}
}

// Temperature converts an 8.8 fixed point reading.
func Temperature(raw uint16) types.Temperature {
	return types.Temperature{Raw: raw, Celsius: float64(raw) / format.TempFixedPoint}
}

func temp(rec []byte, off int) types.Temperature {
	return Temperature(bitops.U16BE(rec[off:]))
}
