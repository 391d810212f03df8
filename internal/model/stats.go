// internal/model/stats.go
package model

// Stats sisältää containerin resurssitiedot yhdeltä `docker stats` riviltä.
// Values stay as display strings; parsing happens where numbers are needed.
type Stats struct {
	CPUPercent  string // e.g. "12.34%"
	MemoryUsage string // reformatted "<used> / <limit>", e.g. "512.0MiB / 1.0GiB"
	NetIO       string // "RX / TX"
	BlockIO     string // "READ / WRITE"
}
