package compat_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/joshuapare/nandkit/compat"
	"github.com/joshuapare/nandkit/fuse"
	"github.com/joshuapare/nandkit/pkg/types"
)

var _ = Describe("Compatibility", func() {
	Describe("fat retail", func() {
		expect := func(lo, hi int, label string) {
			for v := lo; v <= hi; v++ {
				Expect(compat.Compatibility(types.ClassFatRetail, v)).To(Equal(label), "cbldv %d", v)
			}
		}

		It("should map every documented counter", func() {
			expect(1, 5, "Dashboards 1888 -> 7371 Are compatible")
			expect(6, 7, "Dashboard 8498 -> 14699 Are compatible")
			expect(9, 10, "Dashboards 14717 & 14719 are compatible")
			expect(11, 12, "Dashboard 15572 & later is compatible")
		})

		It("should report reserved and out of range counters as unknown", func() {
			for _, v := range []int{-1, 0, 8, 13, 14, 15, 16, 17, 64} {
				Expect(compat.Compatibility(types.ClassFatRetail, v)).To(Equal(compat.Unknown), "cbldv %d", v)
			}
		})
	})

	Describe("slim retail", func() {
		It("should map every documented counter", func() {
			Expect(compat.Compatibility(types.ClassSlimRetail, 1)).To(Equal("Dashboard 14699 is compatible"))
			Expect(compat.Compatibility(types.ClassSlimRetail, 2)).To(Equal("Dashboard 14699 is compatible"))
			Expect(compat.Compatibility(types.ClassSlimRetail, 3)).To(Equal("Dashboards 14717 & 14719 are compatible"))
			Expect(compat.Compatibility(types.ClassSlimRetail, 4)).To(Equal("Dashboard 15572 & later is compatible"))
		})

		It("should report reserved counters as unknown", func() {
			for v := 5; v <= 16; v++ {
				Expect(compat.Compatibility(types.ClassSlimRetail, v)).To(Equal(compat.Unknown))
			}
			Expect(compat.Compatibility(types.ClassSlimRetail, 0)).To(Equal(compat.Unknown))
		})
	})

	It("should have no table for non-retail classes", func() {
		for _, c := range []types.HardwareClass{types.ClassUnknown, types.ClassDevkit, types.ClassTestkit} {
			Expect(compat.Compatibility(c, 3)).To(Equal(compat.Unknown))
		}
	})

	It("should report unknown for an all-zero fuse bank", func() {
		var lines [types.FuseLineCount]uint64
		fs := fuse.Decode(lines)
		Expect(fs.Class).To(Equal(types.ClassUnknown))
		Expect(fs.Unlocked).To(BeFalse())
		Expect(compat.ForFuses(fs)).To(Equal(compat.Unknown))
	})

	It("should annotate a decoded fat retail bank", func() {
		var lines [types.FuseLineCount]uint64
		lines[1] = fuse.PatternFatRetail
		lines[2] = 0xFFFFFF0000000000
		fs := fuse.Decode(lines)
		Expect(fs.CBLDV).To(Equal(6))
		Expect(compat.ForFuses(fs)).To(Equal("Dashboard 8498 -> 14699 Are compatible"))
	})
})

var _ = Describe("FuseTypeName", func() {
	It("should name each class", func() {
		Expect(compat.FuseTypeName(types.ClassFatRetail)).To(Equal("Fat Retail"))
		Expect(compat.FuseTypeName(types.ClassSlimRetail)).To(Equal("Slim Retail"))
		Expect(compat.FuseTypeName(types.ClassDevkit)).To(Equal("Devkit"))
		Expect(compat.FuseTypeName(types.ClassTestkit)).To(Equal("Testkit"))
		Expect(compat.FuseTypeName(types.ClassUnknown)).To(Equal("Unknown"))
	})
})
