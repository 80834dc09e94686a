// Package config loads a per-device profile from an INI file: upload
// region overrides, a reference to where the DES key lives (never the
// key material itself), and default ISO-TP/UDS timing parameters. No
// package in this module reads the profile's transport values.
package config

import (
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/ini.v1"
)

var matchRegionSection = regexp.MustCompile(`^region:(.+)$`)

// RegionOverride mirrors solo.UploadRegion's fields without importing the
// solo package, so the config layer stays independent of any one
// protocol-stack's domain types.
type RegionOverride struct {
	Name      string
	AddrMin   uint32
	AddrMax   uint32
	AddrAlign uint32
	SizeMin   uint32
	SizeMax   uint32
	SizeAlign uint32
}

// Transport carries default timing parameters for constructing a
// concrete transport.
type Transport struct {
	SeparationTimeMs  int
	BlockSize         int
	ResponseTimeoutMs int
}

// Profile is a fully parsed device profile.
type Profile struct {
	Regions   []RegionOverride
	Transport Transport
	DesKeyRef string
}

// Load parses an INI-format device profile. file may be a path, an
// *os.File, or a []byte, matching ini.Load's own accepted input types.
func Load(file any) (*Profile, error) {
	iniFile, err := ini.Load(file)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	profile := &Profile{
		Transport: Transport{SeparationTimeMs: 0, BlockSize: 0, ResponseTimeoutMs: 1000},
	}

	for _, section := range iniFile.Sections() {
		name := section.Name()

		if m := matchRegionSection.FindStringSubmatch(name); m != nil {
			region, err := parseRegion(m[1], section)
			if err != nil {
				return nil, err
			}
			profile.Regions = append(profile.Regions, region)
			continue
		}

		switch name {
		case "transport":
			profile.Transport.SeparationTimeMs = section.Key("separation_time_ms").MustInt(profile.Transport.SeparationTimeMs)
			profile.Transport.BlockSize = section.Key("block_size").MustInt(profile.Transport.BlockSize)
			profile.Transport.ResponseTimeoutMs = section.Key("response_timeout_ms").MustInt(profile.Transport.ResponseTimeoutMs)
		case "security":
			profile.DesKeyRef = section.Key("des_key_file").String()
		}
	}

	return profile, nil
}

func parseRegion(name string, section *ini.Section) (RegionOverride, error) {
	parseHex := func(key string) (uint32, error) {
		v, err := strconv.ParseUint(section.Key(key).String(), 0, 32)
		if err != nil {
			return 0, fmt.Errorf("config: region %q key %q: %w", name, key, err)
		}
		return uint32(v), nil
	}

	addrMin, err := parseHex("addr_min")
	if err != nil {
		return RegionOverride{}, err
	}
	addrMax, err := parseHex("addr_max")
	if err != nil {
		return RegionOverride{}, err
	}
	addrAlign, err := parseHex("addr_align")
	if err != nil {
		return RegionOverride{}, err
	}
	sizeMin, err := parseHex("size_min")
	if err != nil {
		return RegionOverride{}, err
	}
	sizeMax, err := parseHex("size_max")
	if err != nil {
		return RegionOverride{}, err
	}
	sizeAlign, err := parseHex("size_align")
	if err != nil {
		return RegionOverride{}, err
	}

	return RegionOverride{
		Name:      name,
		AddrMin:   addrMin,
		AddrMax:   addrMax,
		AddrAlign: addrAlign,
		SizeMin:   sizeMin,
		SizeMax:   sizeMax,
		SizeAlign: sizeAlign,
	}, nil
}
