package invoke

import (
	"context"
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/opencontrail/vrouter-ctl/pkg/types"
)

var _ = Describe("Invoke", func() {
	var (
		port      *types.Port
		gotBinary string
		gotArgs   []string
	)

	// fakeCommand records the call and runs the given shell script instead
	fakeCommand := func(script string) func(context.Context, string, ...string) *exec.Cmd {
		return func(ctx context.Context, command string, args ...string) *exec.Cmd {
			gotBinary = command
			gotArgs = args
			return exec.CommandContext(ctx, "sh", "-c", script)
		}
	}

	BeforeEach(func() {
		gotBinary = ""
		gotArgs = nil
		port = &types.Port{
			VMID:          "vm-1",
			VMIID:         "vmi-1",
			InterfaceName: "tap0",
			MacAddress:    "02:00:00:00:00:01",
			Type:          types.NovaVMPort,
			DisplayName:   "abc123",
		}
	})

	AfterEach(func() {
		execCommand = exec.CommandContext
	})

	Context("Checking Args function", func() {
		It("Assuming every value is set", func() {
			Expect(Args(port)).To(Equal([]string{
				"--mac-address", "02:00:00:00:00:01",
				"--vm", "vm-1",
				"--vmi", "vmi-1",
				"--interface", "tap0",
				"--", "add", "abc123",
			}))
		})

		It("Assuming only the docker id is set", func() {
			Expect(Args(&types.Port{DisplayName: "abc123"})).To(Equal([]string{"--", "add", "abc123"}))
		})

		It("Assuming a docker id starting with a dash", func() {
			Expect(Args(&types.Port{VMID: "vm", DisplayName: "-abc"})).To(Equal([]string{"--vm", "vm", "--", "add", "-abc"}))
		})
	})

	Context("Checking Exec.AddPort function", func() {
		It("Assuming the command succeeds", func() {
			execCommand = fakeCommand("exit 0")
			e := &Exec{}
			Expect(e.AddPort(context.Background(), port)).To(Succeed())
			Expect(gotBinary).To(Equal(DefaultBinary))
			Expect(gotArgs).To(Equal(Args(port)))
		})

		It("Assuming a custom binary", func() {
			execCommand = fakeCommand("exit 0")
			e := &Exec{Binary: "/usr/local/bin/vrouter-ctl"}
			Expect(e.AddPort(context.Background(), port)).To(Succeed())
			Expect(gotBinary).To(Equal("/usr/local/bin/vrouter-ctl"))
		})

		It("Assuming the command fails", func() {
			execCommand = fakeCommand("echo 'connection refused' >&2; exit 1")
			e := &Exec{}
			err := e.AddPort(context.Background(), port)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("vrouter-ctl --mac-address 02:00:00:00:00:01"))
			Expect(err.Error()).To(ContainSubstring("connection refused"))
			Expect(err.Error()).To(ContainSubstring("exit status 1"))
		})
	})
})
