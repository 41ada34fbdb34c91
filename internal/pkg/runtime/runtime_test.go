package runtime_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/project-devenv/devenv/internal/pkg/runtime"
	"github.com/project-devenv/devenv/internal/pkg/runtime/types"
)

var _ = Describe("NewFactoryFromEnv", func() {
	It("defaults to pip when the variable is unset", func() {
		GinkgoT().Setenv(runtime.EnvRuntimeType, "")

		Expect(runtime.NewFactoryFromEnv().GetRuntimeType()).To(Equal(types.RuntimeTypePip))
	})

	It("selects uv from the environment, case-insensitively", func() {
		GinkgoT().Setenv(runtime.EnvRuntimeType, "UV")

		Expect(runtime.NewFactoryFromEnv().GetRuntimeType()).To(Equal(types.RuntimeTypeUv))
	})

	It("falls back to pip on an unknown value", func() {
		GinkgoT().Setenv(runtime.EnvRuntimeType, "conda")

		Expect(runtime.NewFactoryFromEnv().GetRuntimeType()).To(Equal(types.RuntimeTypePip))
	})
})

var _ = Describe("CreateRuntime", func() {
	It("creates the pip toolchain", func() {
		tool, err := runtime.CreateRuntime(types.RuntimeTypePip)
		Expect(err).NotTo(HaveOccurred())
		Expect(tool.Type()).To(Equal(types.RuntimeTypePip))
	})

	It("creates the uv toolchain", func() {
		tool, err := runtime.CreateRuntime(types.RuntimeTypeUv)
		Expect(err).NotTo(HaveOccurred())
		Expect(tool.Type()).To(Equal(types.RuntimeTypeUv))
	})

	It("rejects unknown runtime types", func() {
		_, err := runtime.CreateRuntime(types.RuntimeType("conda"))
		Expect(err).To(MatchError(ContainSubstring("unsupported runtime type")))
	})
})
