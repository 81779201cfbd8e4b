package compare

// Status is the per-key classification result of a comparison.
type Status uint8

const (
	StatusMissing Status = iota
	StatusMissingFile
	StatusObsolete
	StatusUnchanged
	StatusChanged
	StatusError
	StatusWarning
	StatusDuplicateKey
)

func (s Status) String() string {
	switch s {
	case StatusMissing:
		return "missing"
	case StatusMissingFile:
		return "missing-file"
	case StatusObsolete:
		return "obsolete"
	case StatusUnchanged:
		return "unchanged"
	case StatusChanged:
		return "changed"
	case StatusError:
		return "error"
	case StatusWarning:
		return "warning"
	case StatusDuplicateKey:
		return "duplicate-key"
	}
	return "unknown"
}
