package sensor

import (
	"fmt"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/devices/v3/mpu9250"
	"periph.io/x/host/v3"
)

const standardGravity = 9.80665 // m/s² per g

// MPU9250Config locates the IMU on the SPI bus and scales its raw counts.
type MPU9250Config struct {
	SPIDev     string  // SPI device path, e.g. /dev/spidev0.0
	CSPin      string  // chip select GPIO name, e.g. "8"
	CountsPerG float64 // accelerometer sensitivity, 16384 at ±2g
}

// MPU9250 reads the in-plane acceleration pair from the IMU accelerometer
// over SPI.
type MPU9250 struct {
	imu        *mpu9250.MPU9250
	countsPerG float64
}

// NewMPU9250 initializes the periph host, opens the SPI transport and
// brings the IMU up, including its startup calibration.
func NewMPU9250(cfg MPU9250Config) (*MPU9250, error) {
	if cfg.CountsPerG <= 0 {
		return nil, fmt.Errorf("sensor: counts per g must be positive, got %f", cfg.CountsPerG)
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("sensor: periph host init: %w", err)
	}
	cs := gpioreg.ByName(cfg.CSPin)
	if cs == nil {
		return nil, fmt.Errorf("sensor: chip select pin %q not found", cfg.CSPin)
	}
	tr, err := mpu9250.NewSpiTransport(cfg.SPIDev, cs)
	if err != nil {
		return nil, fmt.Errorf("sensor: imu spi transport: %w", err)
	}
	imu, err := mpu9250.New(*tr)
	if err != nil {
		return nil, fmt.Errorf("sensor: imu device: %w", err)
	}
	if err := imu.Init(); err != nil {
		return nil, fmt.Errorf("sensor: imu init: %w", err)
	}
	if err := imu.Calibrate(); err != nil {
		return nil, fmt.Errorf("sensor: imu calibrate: %w", err)
	}
	return &MPU9250{imu: imu, countsPerG: cfg.CountsPerG}, nil
}

// Sample reads the two in-plane axes and converts counts to m/s².
func (m *MPU9250) Sample() (Reading, error) {
	ax, err := m.imu.GetAccelerationX()
	if err != nil {
		return Reading{}, fmt.Errorf("sensor: imu acc x: %w", err)
	}
	ay, err := m.imu.GetAccelerationY()
	if err != nil {
		return Reading{}, fmt.Errorf("sensor: imu acc y: %w", err)
	}
	scale := standardGravity / m.countsPerG
	return Reading{X: float64(ax) * scale, Y: float64(ay) * scale}, nil
}

func (m *MPU9250) Close() error { return nil }
