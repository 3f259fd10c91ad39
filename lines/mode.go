package lines

import "github.com/eBay/accelerator/errs"

// parseMode mirrors column.parseMode's `[wa]b?(\d.?)?` grammar (§4.4); the
// level digit is meaningful for compressors like gzip/zstd that honor it.
func parseMode(mode string) (truncate bool, level int, err error) {
	if len(mode) == 0 {
		return false, 0, errs.NewBadConfig("lines: empty mode string")
	}

	switch mode[0] {
	case 'w':
		truncate = true
	case 'a':
		truncate = false
	default:
		return false, 0, errs.NewBadConfig("lines: mode must start with 'w' or 'a', got %q", mode)
	}

	rest := mode[1:]
	if len(rest) > 0 && rest[0] == 'b' {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return truncate, 0, nil
	}
	if len(rest) > 2 || rest[0] < '0' || rest[0] > '9' {
		return false, 0, errs.NewBadConfig("lines: invalid mode %q", mode)
	}
	return truncate, int(rest[0] - '0'), nil
}
