package invoke

import (
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/opencontrail/vrouter-ctl/pkg/logging"
	"github.com/opencontrail/vrouter-ctl/pkg/types"
)

// DefaultBinary is looked up in PATH when Exec.Binary is empty
const DefaultBinary = "vrouter-ctl"

var (
	//execCommand used for os.exec
	execCommand = exec.CommandContext
)

// Args returns the vrouter-ctl argument vector that adds port. Empty optional values are left out and the
// positionals follow "--" so that a docker id starting with a dash is not read as a flag.
func Args(port *types.Port) []string {
	var args []string
	for _, opt := range []struct{ flag, value string }{
		{"--mac-address", port.MacAddress},
		{"--vm", port.VMID},
		{"--vmi", port.VMIID},
		{"--interface", port.InterfaceName},
	} {
		if opt.value != "" {
			args = append(args, opt.flag, opt.value)
		}
	}
	return append(args, "--", types.CommandAdd.String(), port.DisplayName)
}

// Exec adds ports by running the vrouter-ctl binary.
type Exec struct {
	Binary string
}

// AddPort implements vrouter.PortAdder. The port type is fixed by vrouter-ctl and not forwarded.
func (e *Exec) AddPort(ctx context.Context, port *types.Port) error {
	binary := e.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	args := Args(port)

	logging.Debug("Running vrouter-ctl",
		"func", "AddPort",
		"binary", binary,
		"args", strings.Join(args, " "))

	cmd := execCommand(ctx, binary, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "%s %s: %s", binary, strings.Join(args, " "), strings.TrimSpace(string(out)))
	}
	return nil
}
