package synth

import (
	"fmt"

	"github.com/blacktop/go-dwarf"

	"github.com/langulus/rtti/meta"
)

// EnrichFromDWARF augments d's already-synthesized Members with field
// offsets/names recovered from DWARF debug info, for types whose defining
// package was compiled with debug symbols but whose fields are otherwise
// opaque to reflect (e.g. cgo-exposed structs with unexported fields).
// Go's own reflect.Type already gives exact offsets for exported fields, so
// this is a supplement, not a replacement.
//
// Grounded on file.go's DWARF() method, which assembles a *dwarf.Data from
// a Mach-O's debug sections and then walks it with d.Reader(); here the
// caller supplies an already-opened *dwarf.Data (typically obtained via
// debug/elf or debug/macho against the running binary) and we do the same
// Reader-based walk, filtered to one structure's direct children.
func EnrichFromDWARF(data *dwarf.Data, cppName string, d *meta.MetaData) error {
	r := data.Reader()
	for {
		entry, err := r.Next()
		if err != nil {
			return fmt.Errorf("synth: dwarf enrichment for %s: %w", cppName, err)
		}
		if entry == nil {
			return nil
		}
		if entry.Tag != dwarf.TagStructType {
			continue
		}
		name, ok := entry.Val(dwarf.AttrName).(string)
		if !ok || name != cppName {
			continue
		}
		enrichMembersFromChildren(r, d)
		return nil
	}
}

// enrichMembersFromChildren walks the DW_TAG_member children of the
// structure entry r last returned, filling in the offset of any Member with
// the same name whose Offset is still zero.
func enrichMembersFromChildren(r *dwarf.Reader, d *meta.MetaData) {
	for {
		child, err := r.Next()
		if err != nil || child == nil || child.Tag == 0 {
			return
		}
		if child.Tag != dwarf.TagMember {
			continue
		}
		name, _ := child.Val(dwarf.AttrName).(string)
		loc, hasLoc := child.Val(dwarf.AttrDataMemberLoc).(int64)
		if name == "" || !hasLoc {
			continue
		}
		for i := range d.Members {
			if d.Members[i].Name == name && d.Members[i].Offset == 0 {
				d.Members[i].Offset = uintptr(loc)
			}
		}
	}
}
