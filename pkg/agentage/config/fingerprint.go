package config

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// DeviceID returns the cached device id, or computes a fingerprint and
// persists it by merging into the existing config. Persistence failures are
// absorbed: the caller always gets an id for the current invocation.
func (s *Store) DeviceID() string {
	cfg := s.Load()
	if cfg.DeviceID != "" {
		return cfg.DeviceID
	}
	cfg.DeviceID = Fingerprint()
	_ = s.Save(cfg)
	return cfg.DeviceID
}

// Fingerprint derives a 32-character lowercase hex id from the machine id,
// OS, architecture, and hostname. When no machine id is available the hash
// is salted with the current instant instead — such an id is only stable
// across runs once DeviceID has persisted it.
func Fingerprint() string {
	seed := machineID()
	if seed == "" {
		seed = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	host, _ := os.Hostname()
	sum := sha256.Sum256([]byte(seed + "|" + runtime.GOOS + "|" + runtime.GOARCH + "|" + host))
	return hex.EncodeToString(sum[:])[:32]
}

func machineID() string {
	for _, path := range []string{"/etc/machine-id", "/var/lib/dbus/machine-id"} {
		if data, err := os.ReadFile(path); err == nil {
			if id := strings.TrimSpace(string(data)); id != "" {
				return id
			}
		}
	}
	if runtime.GOOS == "darwin" {
		if out, err := exec.Command("ioreg", "-rd1", "-c", "IOPlatformExpertDevice").Output(); err == nil {
			return parsePlatformUUID(string(out))
		}
	}
	return ""
}

func parsePlatformUUID(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "IOPlatformUUID") {
			continue
		}
		parts := strings.Split(line, "\"")
		if len(parts) >= 4 {
			return parts[3]
		}
	}
	return ""
}
