package version

var _ = Describe("parsing a version string", func() {

	It("accepts a full Major.Minor.Patch triple", func() {
		ver, err := Parse("1.2.3")
		Expect(err).To(BeNil())
		Expect(ver.Major).To(Equal(uint64(1)))
		Expect(ver.Minor).To(Equal(uint64(2)))
		Expect(ver.Patch).To(Equal(uint64(3)))
	})

	It("rejects an incomplete version string", func() {
		_, err := Parse("1.2")
		Expect(err).ToNot(BeNil())
	})

	It("implements flag.Value", func() {
		var ver Version
		Expect(ver.Set("0.4.7")).To(BeNil())
		Expect(ver.String()).To(Equal("0.4.7"))
	})
})

var _ = Describe("incrementing a version", func() {

	It("bumps minor and resets patch", func() {
		ver, err := Parse("1.2.3")
		Expect(err).To(BeNil())
		Expect(ver.IncrementMinor().String()).To(Equal("1.3.0"))
	})

	It("bumps patch and keeps the rest", func() {
		ver, err := Parse("1.3.0")
		Expect(err).To(BeNil())
		Expect(ver.IncrementPatch().String()).To(Equal("1.3.1"))
	})

	It("bumps major and resets the rest", func() {
		ver, err := Parse("1.2.3")
		Expect(err).To(BeNil())
		Expect(ver.IncrementMajor().String()).To(Equal("2.0.0"))
	})

	It("never decrements", func() {
		ver, err := Parse("1.2.3")
		Expect(err).To(BeNil())

		minor := ver.IncrementMinor()
		Expect(minor.GT(ver.Version)).To(BeTrue())

		patch := minor.IncrementPatch()
		Expect(patch.GT(minor.Version)).To(BeTrue())
		Expect(patch.String()).To(Equal("1.3.1"))
	})
})
