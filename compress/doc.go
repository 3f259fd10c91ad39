// Package compress is documented in compress.go; this file holds no code.
// Each codec file's init registers that codec, so importing compress is
// enough to make every built-in codec name resolvable via Get.
package compress
