//go:build debugtag

package debugtag

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tag with diagnostics enabled", func() {
	It("should report the enabled build", func() {
		Expect(Enabled).To(BeTrue())
	})

	It("should mint unequal tags back to back", func() {
		a := New()
		b := New()

		Expect(a.Equal(b)).To(BeFalse())
		Expect(a != b).To(BeTrue())
	})

	It("should advance the local counter by one per tag", func() {
		a := New()
		b := New()
		c := New()

		Expect(b.value).To(Equal(a.value + 1))
		Expect(c.value).To(Equal(b.value + 1))
	})

	It("should wrap the local counter on overflow", func() {
		cell := locals.Get().(*uint32)
		*cell = ^uint32(0)
		locals.Put(cell)

		a := New()
		b := New()

		Expect(a.value).To(Equal(^uint32(0)))
		Expect(b.value).To(Equal(uint32(0)))
	})

	It("should distinguish tags from fixed values", func() {
		a := FromValue(42)
		b := FromValue(43)

		Expect(a.value).To(Equal(uint32(42)))
		Expect(a.Equal(b)).To(BeFalse())
	})

	It("should mint distinct tags across goroutines", func() {
		const numGoroutine = 16

		var wg sync.WaitGroup
		tags := make(chan Tag, numGoroutine)

		for i := 0; i < numGoroutine; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tags <- New()
			}()
		}

		wg.Wait()
		close(tags)

		seen := map[Tag]bool{}
		for tag := range tags {
			Expect(seen[tag]).To(BeFalse())
			seen[tag] = true
		}

		Expect(seen).To(HaveLen(numGoroutine))
	})

	It("should spread starting offsets over the value space", func() {
		const numOffset = 4096

		seen := map[uint32]bool{}
		offset := uint32(0)
		for i := 0; i < numOffset; i++ {
			offset += increment
			Expect(seen[offset]).To(BeFalse())
			seen[offset] = true
		}
	})

	It("should format the underlying value", func() {
		tag := FromValue(0x1234)

		Expect(tag.String()).To(Equal("Tag(0x00001234)"))
	})
})
