package format

import (
	"fmt"
	"strings"
)

// Version identifies a target Java Edition release. It selects the schema
// era of the written compound tree and the DataVersion integer stamped into
// it. Versions are ordered oldest to newest.
type Version int

const (
	JE1_9 Version = iota
	JE1_9_1
	JE1_9_2
	JE1_9_3
	JE1_9_4
	JE1_10
	JE1_10_1
	JE1_10_2
	JE1_11
	JE1_11_1
	JE1_11_2
	JE1_12
	JE1_12_1
	JE1_12_2
	JE1_13
	JE1_13_1
	JE1_13_2
	JE1_14
	JE1_14_1
	JE1_14_2
	JE1_14_3
	JE1_14_4
	JE1_15
	JE1_15_1
	JE1_15_2
	JE1_16
	JE1_16_1
	JE1_16_2
	JE1_16_3
	JE1_16_4
	JE1_16_5
	JE1_17
	JE1_17_1
	JE1_18
	JE1_18_1
	JE1_18_2
	JE1_19
	JE1_19_1
	JE1_19_2
	JE1_19_3
	JE1_19_4
	JE1_20
	JE1_20_1
)

// schemaEra is the compound-tag layout generation a version serializes to.
type schemaEra int

const (
	spongeV1 schemaEra = 1 + iota // TileEntities, wrapped root
	spongeV2                      // BlockData + BlockEntities, bare root
	spongeV3                      // nested Blocks compound, wrapped root
)

type versionInfo struct {
	release     string // e.g., "1.19.2"
	dataVersion int32
	era         schemaEra
}

var versions = [...]versionInfo{
	JE1_9:    {"1.9", 169, spongeV1},
	JE1_9_1:  {"1.9.1", 175, spongeV1},
	JE1_9_2:  {"1.9.2", 176, spongeV1},
	JE1_9_3:  {"1.9.3", 183, spongeV1},
	JE1_9_4:  {"1.9.4", 184, spongeV1},
	JE1_10:   {"1.10", 510, spongeV1},
	JE1_10_1: {"1.10.1", 511, spongeV1},
	JE1_10_2: {"1.10.2", 512, spongeV1},
	JE1_11:   {"1.11", 819, spongeV1},
	JE1_11_1: {"1.11.1", 921, spongeV1},
	JE1_11_2: {"1.11.2", 922, spongeV1},
	JE1_12:   {"1.12", 1139, spongeV1},
	JE1_12_1: {"1.12.1", 1241, spongeV1},
	JE1_12_2: {"1.12.2", 1343, spongeV1},
	JE1_13:   {"1.13", 1519, spongeV2},
	JE1_13_1: {"1.13.1", 1628, spongeV2},
	JE1_13_2: {"1.13.2", 1631, spongeV2},
	JE1_14:   {"1.14", 1952, spongeV2},
	JE1_14_1: {"1.14.1", 1957, spongeV2},
	JE1_14_2: {"1.14.2", 1963, spongeV2},
	JE1_14_3: {"1.14.3", 1968, spongeV2},
	JE1_14_4: {"1.14.4", 1976, spongeV2},
	JE1_15:   {"1.15", 2225, spongeV2},
	JE1_15_1: {"1.15.1", 2227, spongeV2},
	JE1_15_2: {"1.15.2", 2230, spongeV2},
	JE1_16:   {"1.16", 2566, spongeV2},
	JE1_16_1: {"1.16.1", 2567, spongeV2},
	JE1_16_2: {"1.16.2", 2578, spongeV2},
	JE1_16_3: {"1.16.3", 2580, spongeV2},
	JE1_16_4: {"1.16.4", 2584, spongeV2},
	JE1_16_5: {"1.16.5", 2586, spongeV2},
	JE1_17:   {"1.17", 2724, spongeV2},
	JE1_17_1: {"1.17.1", 2730, spongeV2},
	JE1_18:   {"1.18", 2860, spongeV2},
	JE1_18_1: {"1.18.1", 2865, spongeV2},
	JE1_18_2: {"1.18.2", 2975, spongeV2},
	JE1_19:   {"1.19", 3105, spongeV2},
	JE1_19_1: {"1.19.1", 3117, spongeV2},
	JE1_19_2: {"1.19.2", 3120, spongeV2},
	JE1_19_3: {"1.19.3", 3218, spongeV3},
	JE1_19_4: {"1.19.4", 3337, spongeV3},
	JE1_20:   {"1.20", 3463, spongeV3},
	JE1_20_1: {"1.20.1", 3465, spongeV3},
}

func (v Version) valid() bool {
	return v >= 0 && int(v) < len(versions)
}

// String returns the display form, e.g. "JE 1.19.2".
func (v Version) String() string {
	if !v.valid() {
		return fmt.Sprintf("Version(%d)", int(v))
	}
	return "JE " + versions[v].release
}

// Release returns the bare release string, e.g. "1.19.2".
func (v Version) Release() string {
	if !v.valid() {
		return ""
	}
	return versions[v].release
}

// DataVersion returns the integer data version stamped into the container.
func (v Version) DataVersion() int {
	if !v.valid() {
		return 0
	}
	return int(versions[v].dataVersion)
}

// Versions returns all supported versions, oldest first.
func Versions() []Version {
	out := make([]Version, len(versions))
	for i := range versions {
		out[i] = Version(i)
	}
	return out
}

// ParseVersion resolves a version from its display, enum or release form:
// "JE 1.19.2", "JE_1_19_2" and "1.19.2" all name the same version.
func ParseVersion(s string) (Version, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "JE")
	t = strings.TrimLeft(t, " _")
	t = strings.ReplaceAll(t, "_", ".")
	for i := range versions {
		if versions[i].release == t {
			return Version(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedVersion, s)
}

// VersionForDataVersion returns the newest version whose data version does
// not exceed dv, the inverse of DataVersion for decoded files.
func VersionForDataVersion(dv int) (Version, bool) {
	for i := len(versions) - 1; i >= 0; i-- {
		if int(versions[i].dataVersion) <= dv {
			return Version(i), true
		}
	}
	return 0, false
}
