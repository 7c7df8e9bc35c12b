package models

import "strings"

// Status is the two-letter order status code persisted in the database.
// The human-readable label is what goes over the wire.
type Status string

const (
	StatusPending    Status = "P"
	StatusInProgress Status = "I"
	StatusCancelled  Status = "C"
	StatusDone       Status = "DN"
	StatusDelivered  Status = "DL"
)

var statusLabels = map[Status]string{
	StatusPending:    "Pending",
	StatusInProgress: "In-progress",
	StatusCancelled:  "Cancelled",
	StatusDone:       "Done",
	StatusDelivered:  "Delivered",
}

// Label returns the human-readable form of the status code.
// Unknown codes are returned as-is.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Valid reports whether s is one of the known status codes.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseStatus resolves a status from either its code ("DL") or its
// label ("Delivered"), case-insensitively for labels.
func ParseStatus(value string) (Status, bool) {
	code := Status(strings.ToUpper(value))
	if code.Valid() {
		return code, true
	}
	for c, label := range statusLabels {
		if strings.EqualFold(label, value) {
			return c, true
		}
	}
	return "", false
}

// ParseStatusList splits a comma-separated list of status codes.
// Unrecognized codes are kept and flow into the IN filter, where they
// simply match nothing.
func ParseStatusList(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if status, ok := ParseStatus(p); ok {
			codes = append(codes, string(status))
		} else {
			codes = append(codes, p)
		}
	}
	return codes
}

// Size is the pizza size code used both on orders and as the key of a
// catalog price map.
type Size string

const (
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

// Valid reports whether s is one of S, M or L.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}
