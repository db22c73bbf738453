package resolve

import "loadenv/internal/model"

// Apply writes a resolved value into the snapshot and reports whether the
// key actually changed. An absent key always counts as changed; an equal
// value is a silent no-op so repeated loads on directory changes stay quiet.
func Apply(snap model.Snapshot, key, value string) (model.ChangeRecord, bool) {
	prev, exists := snap.Get(key)
	if exists && prev == value {
		return model.ChangeRecord{}, false
	}
	snap.Set(key, value)

	record := model.ChangeRecord{Key: key, DisplayValue: value}
	if IsSecretKey(key) {
		record.Secret = true
		record.DisplayValue = Mask(value)
	}
	return record, true
}
