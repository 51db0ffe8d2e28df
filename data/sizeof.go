package data

const attrHdrLen = 4

func align4(n int) int {
	return (n + 3) &^ 3
}

// SizeOf returns the maximum encoded size of the given attribute in a
// netlink message for the given family. Unknown attributes size to zero.
func SizeOf(o Opt, f Family) int {
	var payload int
	switch o {
	case OptIP, OptIPTo:
		if f == FamilyInet6 {
			payload = 16
		} else {
			payload = 4
		}
		// address attributes are nested, one extra attribute header
		payload += attrHdrLen
	case OptCIDR:
		payload = 1
	case OptPort, OptPortTo:
		payload = 2
	case OptTimeout:
		payload = 4
	case OptEther:
		payload = 6
	case OptName, OptNameRef:
		payload = 32
	default:
		return 0
	}
	return attrHdrLen + align4(payload)
}
