package interpreter_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/project-devenv/devenv/internal/pkg/constants"
	"github.com/project-devenv/devenv/internal/pkg/hostprobe"
	"github.com/project-devenv/devenv/internal/pkg/hostprobe/hostprobetest"
	"github.com/project-devenv/devenv/internal/pkg/validators/python/interpreter"
)

var _ = Describe("InterpreterRule", func() {
	verify := func(major, minor int) error {
		probe := &hostprobetest.Fake{Version: hostprobe.Version{Major: major, Minor: minor}}

		return interpreter.NewInterpreterRule(probe).Verify()
	}

	It("accepts a well-supported version", func() {
		Expect(verify(3, 9)).To(Succeed())
	})

	It("accepts the newest supported minor", func() {
		Expect(verify(3, 12)).To(Succeed())
	})

	It("rejects a minor above the threshold, naming the detected version", func() {
		err := verify(3, 13)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("3.13"))
		Expect(err.Error()).To(ContainSubstring(constants.EnvInterpreter))
	})

	It("rejects a wrong major version", func() {
		Expect(verify(2, 7)).To(HaveOccurred())
	})

	It("propagates detection failures", func() {
		probe := &hostprobetest.Fake{VersionErr: errors.New("no interpreter on host")}
		err := interpreter.NewInterpreterRule(probe).Verify()
		Expect(err).To(MatchError(ContainSubstring("no interpreter on host")))
	})

	It("reports error level so validation fails on it", func() {
		rule := interpreter.NewInterpreterRule(&hostprobetest.Fake{})
		Expect(rule.Name()).To(Equal("interpreter"))
		Expect(rule.Level()).To(Equal(constants.ValidationLevelError))
	})
})
