package slab

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/debugtag"
)

var _ = Describe("Slab", func() {

	var s *Slab[int]

	BeforeEach(func() {
		s = New[int]()
	})

	It("should push and get", func() {
		ix := s.Push(42)

		Expect(s.Len()).To(Equal(1))
		Expect(s.Get(ix)).To(Equal(42))
	})

	It("should set", func() {
		ix := s.Push(42)

		s.Set(ix, 1337)

		Expect(s.Get(ix)).To(Equal(1337))
	})

	It("should keep indices valid across growth", func() {
		first := s.Push(1)
		for i := 2; i <= 100; i++ {
			s.Push(i)
		}

		Expect(s.Len()).To(Equal(100))
		Expect(s.Get(first)).To(Equal(1))
	})

	It("should reject indices from another slab", func() {
		if !debugtag.Enabled {
			Skip("tag checks require the debugtag build tag")
		}

		other := New[int]()
		other.Push(1337)

		ix := s.Push(42)

		Expect(func() {
			other.Get(ix)
		}).To(Panic())
	})
})
