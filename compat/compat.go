// Package compat maps decoded lock-down counters to the dashboard releases
// a console can boot. The tables are static and depend on the hardware
// class: fat and slim retail consoles number their CB counter differently,
// and every other class has no table at all.
package compat

import "github.com/joshuapare/nandkit/pkg/types"

// Unknown is returned for any counter outside a documented range.
const Unknown = "Unknown"

// span covers CB LDV values lo..hi inclusive.
type span struct {
	lo, hi int
	label  string
}

// Values 8 and 13..16 are reserved on fat consoles.
var fatTable = []span{
	{1, 5, "Dashboards 1888 -> 7371 Are compatible"},
	{6, 7, "Dashboard 8498 -> 14699 Are compatible"},
	{9, 10, "Dashboards 14717 & 14719 are compatible"},
	{11, 12, "Dashboard 15572 & later is compatible"},
}

// Values 5..16 are reserved on slim consoles.
var slimTable = []span{
	{1, 2, "Dashboard 14699 is compatible"},
	{3, 3, "Dashboards 14717 & 14719 are compatible"},
	{4, 4, "Dashboard 15572 & later is compatible"},
}

func lookup(table []span, cbldv int) string {
	for _, s := range table {
		if cbldv >= s.lo && cbldv <= s.hi {
			return s.label
		}
	}
	return Unknown
}

// Compatibility describes which dashboards a console of the given class
// accepts at the given CB LDV.
func Compatibility(class types.HardwareClass, cbldv int) string {
	switch class {
	case types.ClassFatRetail:
		return lookup(fatTable, cbldv)
	case types.ClassSlimRetail:
		return lookup(slimTable, cbldv)
	default:
		return Unknown
	}
}

// ForFuses is Compatibility for a decoded fuse set.
func ForFuses(fs types.FuseSet) string {
	return Compatibility(fs.Class, fs.CBLDV)
}

// FuseTypeName is the display name of a hardware class.
func FuseTypeName(class types.HardwareClass) string {
	return class.String()
}
