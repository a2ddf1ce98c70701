package binary

import (
	"go.uber.org/zap"
)

// LoggingDelegate wraps another Delegate and logs the module's begin and end
// and each standard or custom section's Begin event at debug level, and
// errors at warn level. End-of-section, per-instruction and per-entry events
// pass straight through without logging, since a function body can generate
// thousands of them.
type LoggingDelegate struct {
	Delegate
	Log *zap.Logger
}

func (l LoggingDelegate) BeginModule(version uint32) error {
	l.Log.Debug("begin module", zap.Uint32("version", version))
	return l.Delegate.BeginModule(version)
}

func (l LoggingDelegate) EndModule() error {
	l.Log.Debug("end module")
	return l.Delegate.EndModule()
}

func (l LoggingDelegate) OnError(message string) bool {
	l.Log.Warn("decode error", zap.String("error", message))
	return l.Delegate.OnError(message)
}

func (l LoggingDelegate) BeginTypeSection(size uint32) error {
	l.Log.Debug("begin section", zap.String("section", "type"), zap.Uint32("size", size))
	return l.Delegate.BeginTypeSection(size)
}

func (l LoggingDelegate) BeginImportSection(size uint32) error {
	l.Log.Debug("begin section", zap.String("section", "import"), zap.Uint32("size", size))
	return l.Delegate.BeginImportSection(size)
}

func (l LoggingDelegate) BeginFunctionSection(size uint32) error {
	l.Log.Debug("begin section", zap.String("section", "function"), zap.Uint32("size", size))
	return l.Delegate.BeginFunctionSection(size)
}

func (l LoggingDelegate) BeginTableSection(size uint32) error {
	l.Log.Debug("begin section", zap.String("section", "table"), zap.Uint32("size", size))
	return l.Delegate.BeginTableSection(size)
}

func (l LoggingDelegate) BeginMemorySection(size uint32) error {
	l.Log.Debug("begin section", zap.String("section", "memory"), zap.Uint32("size", size))
	return l.Delegate.BeginMemorySection(size)
}

func (l LoggingDelegate) BeginGlobalSection(size uint32) error {
	l.Log.Debug("begin section", zap.String("section", "global"), zap.Uint32("size", size))
	return l.Delegate.BeginGlobalSection(size)
}

func (l LoggingDelegate) BeginExportSection(size uint32) error {
	l.Log.Debug("begin section", zap.String("section", "export"), zap.Uint32("size", size))
	return l.Delegate.BeginExportSection(size)
}

func (l LoggingDelegate) BeginStartSection(size uint32) error {
	l.Log.Debug("begin section", zap.String("section", "start"), zap.Uint32("size", size))
	return l.Delegate.BeginStartSection(size)
}

func (l LoggingDelegate) BeginElementSection(size uint32) error {
	l.Log.Debug("begin section", zap.String("section", "element"), zap.Uint32("size", size))
	return l.Delegate.BeginElementSection(size)
}

func (l LoggingDelegate) BeginCodeSection(size uint32) error {
	l.Log.Debug("begin section", zap.String("section", "code"), zap.Uint32("size", size))
	return l.Delegate.BeginCodeSection(size)
}

func (l LoggingDelegate) BeginDataSection(size uint32) error {
	l.Log.Debug("begin section", zap.String("section", "data"), zap.Uint32("size", size))
	return l.Delegate.BeginDataSection(size)
}

func (l LoggingDelegate) BeginCustomSection(size uint32, name string) error {
	l.Log.Debug("begin custom section", zap.String("name", name), zap.Uint32("size", size))
	return l.Delegate.BeginCustomSection(size, name)
}

var _ Delegate = LoggingDelegate{}
