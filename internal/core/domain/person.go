package domain

// CanonicalIDLength is the number of leading characters of a raw
// reference identifier that form the canonical join key. Raw values in
// the TEI sources may carry suffixes (page anchors, disambiguators)
// beyond this prefix; the reference dataset only knows the prefix.
const CanonicalIDLength = 9

// CanonicalID is the truncated person identifier used as the join key
// between document references and the reference dataset.
type CanonicalID string

// Canonicalize truncates a raw reference identifier to its canonical
// prefix. Values shorter than the canonical length are used as-is;
// truncation counts runes so a multibyte character is never split.
func Canonicalize(raw string) CanonicalID {
	runes := []rune(raw)
	if len(runes) <= CanonicalIDLength {
		return CanonicalID(raw)
	}
	return CanonicalID(runes[:CanonicalIDLength])
}

// PersonRecord is one entry from the reference dataset.
// ID and Name are distinct typed fields: joins must key on the ID's
// canonical prefix, never on Name.
type PersonRecord struct {
	// ID is the person identifier as stored in the dataset.
	ID string `json:"ID"`

	// Name is the human-readable display name.
	Name string `json:"name"`
}

// Canonical returns the record's join key, the canonical prefix of its
// identifier. For datasets whose identifiers are already canonical
// this is the identity.
func (p PersonRecord) Canonical() CanonicalID {
	return Canonicalize(p.ID)
}

// ReferenceCount maps a CanonicalID to the number of times any
// reference truncating to it appeared across all documents. Counts are
// strictly positive; absent keys mean zero.
type ReferenceCount map[CanonicalID]int

// Add increments the count for id by one, creating the entry if it
// does not exist yet. It never overwrites an existing count.
func (rc ReferenceCount) Add(id CanonicalID) {
	rc[id]++
}

// Merge adds every count in other into rc by summation. Summation is
// commutative and associative, so per-document partial counts can be
// merged in any order.
func (rc ReferenceCount) Merge(other ReferenceCount) {
	for id, n := range other {
		rc[id] += n
	}
}

// RankedEntry is a resolved ranking entry, constructed only after a
// reference count was successfully joined against a PersonRecord.
type RankedEntry struct {
	// Name is the resolved display name from the dataset.
	Name string

	// ID is the dataset identifier of the matched record.
	ID string

	// Count is the total number of references to this person.
	Count int
}
