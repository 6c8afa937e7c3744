// package logging is a small wrapper around github.com/k8snetworkplumbingwg/cni-log

package logging

import (
	cnilog "github.com/k8snetworkplumbingwg/cni-log"
)

const (
	labelProgram   = "program"
	labelDockerID  = "dockerID"
	labelVM        = "vm"
	labelVMI       = "vmi"
	labelInterface = "interface"
	programName    = "vrouter-ctl"
)

var (
	logLevelDefault = cnilog.InfoLevel
	// labels are written ahead of every message's own key/value pairs
	labels = []interface{}{labelProgram, programName}
)

// Init sets the log level and log file and records the identifiers of the port being handled: docker ID, VM ID,
// VMI ID and interface name. Empty identifiers are not logged.
func Init(logLevel, logFile, dockerID, vm, vmi, interfaceName string) {
	setLogLevel(logLevel)
	setLogFile(logFile)

	labels = []interface{}{labelProgram, programName}
	for _, l := range []struct{ key, value string }{
		{labelDockerID, dockerID},
		{labelVM, vm},
		{labelVMI, vmi},
		{labelInterface, interfaceName},
	} {
		if l.value != "" {
			labels = append(labels, l.key, l.value)
		}
	}
}

// setLogLevel sets the log level to either verbose, debug, info, warn, error or panic. If an invalid string is
// provided, it uses info.
func setLogLevel(l string) {
	ll := cnilog.StringToLevel(l)
	if ll == cnilog.InvalidLevel {
		ll = logLevelDefault
	}
	cnilog.SetLogLevel(ll)
}

// setLogFile sets the log file for logging. If the empty string is provided, it uses stderr.
func setLogFile(fileName string) {
	if fileName == "" {
		cnilog.SetLogStderr(true)
		cnilog.SetLogFile("")
		return
	}
	cnilog.SetLogFile(fileName)
	cnilog.SetLogStderr(false)
}

// Debug provides structured logging for log level >= debug.
func Debug(msg string, args ...interface{}) {
	cnilog.DebugStructured(msg, prependArgs(args)...)
}

// Info provides structured logging for log level >= info.
func Info(msg string, args ...interface{}) {
	cnilog.InfoStructured(msg, prependArgs(args)...)
}

// Warning provides structured logging for log level >= warning.
func Warning(msg string, args ...interface{}) {
	cnilog.WarningStructured(msg, prependArgs(args)...)
}

// Error provides structured logging for log level >= error.
func Error(msg string, args ...interface{}) {
	_ = cnilog.ErrorStructured(msg, prependArgs(args)...)
}

// Panic provides structured logging for log level >= panic.
func Panic(msg string, args ...interface{}) {
	cnilog.PanicStructured(msg, prependArgs(args)...)
}

func prependArgs(args []interface{}) []interface{} {
	out := make([]interface{}, 0, len(labels)+len(args))
	out = append(out, labels...)
	return append(out, args...)
}
