package types

// PortType is the kind of port the vrouter agent is asked to plumb.
type PortType string

const (
	// NovaVMPort is a port backing a VM or container interface
	NovaVMPort PortType = "NovaVMPort"
	// NameSpacePort is a port backing a network namespace (service instances)
	NameSpacePort PortType = "NameSpacePort"
)

// Port holds the values forwarded to the vrouter agent when a port is added
type Port struct {
	VMID          string
	VMIID         string
	InterfaceName string
	MacAddress    string
	Type          PortType
	DisplayName   string
}

// Command is the operation selected on the command line
type Command int

const (
	// CommandUnknown is any operation the tool does not implement
	CommandUnknown Command = iota
	// CommandAdd registers a port with the vrouter agent
	CommandAdd
)

var commandNames = map[Command]string{
	CommandAdd: "add",
}

// SupportedCommands lists the command names accepted on the command line.
func SupportedCommands() []string {
	return []string{CommandAdd.String()}
}

// ParseCommand maps a command name to its Command. Names that are not supported yield CommandUnknown.
func ParseCommand(name string) Command {
	for c, n := range commandNames {
		if n == name {
			return c
		}
	}
	return CommandUnknown
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "unknown"
}
