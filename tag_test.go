package debugtag

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tag", func() {
	It("should equal itself", func() {
		a := New()

		Expect(a.Equal(a)).To(BeTrue())
	})

	It("should equal its copy", func() {
		a := New()
		b := a

		Expect(a.Equal(b)).To(BeTrue())
		Expect(b.Equal(a)).To(BeTrue())
		Expect(a == b).To(BeTrue())
	})

	It("should build equal tags from the same fixed value", func() {
		a := FromValue(42)
		b := FromValue(42)

		Expect(a.Equal(b)).To(BeTrue())
	})

	It("should be usable as a map key", func() {
		a := New()
		seen := map[Tag]int{}

		seen[a]++
		seen[a]++

		Expect(seen[a]).To(Equal(2))
	})
})
