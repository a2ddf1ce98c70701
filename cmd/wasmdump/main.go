package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/wasmcursor/wasmbin/internal/wasm"
	"github.com/wasmcursor/wasmbin/internal/wasm/binary"
)

func main() {
	doMain(os.Stdout, os.Stderr, os.Exit)
}

// doMain is separated out for the purpose of unit testing.
func doMain(stdOut, stdErr io.Writer, exit func(code int)) {
	flag.CommandLine.SetOutput(stdErr)

	var help bool
	flag.BoolVar(&help, "h", false, "print usage")

	var verbose bool
	flag.BoolVar(&verbose, "v", false, "log section boundaries to stderr")

	var names bool
	flag.BoolVar(&names, "names", false, "read the \"name\" custom section")

	var exceptions bool
	flag.BoolVar(&exceptions, "exceptions", false, "enable the exception-handling feature")

	var saturating bool
	flag.BoolVar(&saturating, "saturating-float-to-int", false, "enable saturating float-to-int truncation opcodes")

	flag.Parse()

	if help || flag.NArg() == 0 {
		printUsage(stdErr)
		exit(0)
		return
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(stdErr, "error reading wasm binary: %v\n", err)
		exit(1)
		return
	}

	var features wasm.FeatureSet
	if exceptions {
		features |= wasm.FeatureExceptions
	}
	if saturating {
		features |= wasm.FeatureSaturatingFloatToInt
	}

	var delegate binary.Delegate = &dumpDelegate{out: stdOut}
	if verbose {
		log, _ := zap.NewDevelopment()
		delegate = binary.LoggingDelegate{Delegate: delegate, Log: log}
	}

	opts := binary.Options{Features: features, ReadDebugNames: names}
	if err := binary.DecodeModule(data, delegate, opts); err != nil {
		fmt.Fprintf(stdErr, "error decoding module: %v\n", err)
		exit(1)
		return
	}
	exit(0)
}

func printUsage(stdErr io.Writer) {
	fmt.Fprintln(stdErr, "wasmdump [-v] [-names] [-exceptions] [-saturating-float-to-int] <path-to-wasm>")
	fmt.Fprintln(stdErr)
	flag.PrintDefaults()
}

// dumpDelegate prints one greppable line for each of a subset of events: the
// module start, decode errors, the type, import, function, export, code and
// custom section headers with their per-entry events, and function and local
// names. It embeds binary.BaseDelegate, so every other event, including all
// instruction-level events, is not printed.
type dumpDelegate struct {
	binary.BaseDelegate
	out io.Writer
}

func (d *dumpDelegate) BeginModule(version uint32) error {
	fmt.Fprintf(d.out, "module version=%d\n", version)
	return nil
}

func (d *dumpDelegate) OnError(message string) bool {
	fmt.Fprintf(d.out, "error: %s\n", message)
	return false
}

func (d *dumpDelegate) BeginTypeSection(size uint32) error {
	fmt.Fprintf(d.out, "section type size=%d\n", size)
	return nil
}

func (d *dumpDelegate) OnType(index wasm.Index, params, results []wasm.ValueType) error {
	fmt.Fprintf(d.out, "  type[%d] params=%s results=%s\n", index, valueTypesString(params), valueTypesString(results))
	return nil
}

func (d *dumpDelegate) BeginImportSection(size uint32) error {
	fmt.Fprintf(d.out, "section import size=%d\n", size)
	return nil
}

func (d *dumpDelegate) OnImportFunc(index wasm.Index, module, field string, funcIndex, sigIndex wasm.Index) error {
	fmt.Fprintf(d.out, "  import func[%d] %s.%s sig=%d\n", funcIndex, module, field, sigIndex)
	return nil
}

func (d *dumpDelegate) OnImportTable(index wasm.Index, module, field string, tableIndex wasm.Index, elemType wasm.ValueType, limits wasm.Limits) error {
	fmt.Fprintf(d.out, "  import table[%d] %s.%s\n", tableIndex, module, field)
	return nil
}

func (d *dumpDelegate) OnImportMemory(index wasm.Index, module, field string, memoryIndex wasm.Index, limits wasm.Limits) error {
	fmt.Fprintf(d.out, "  import memory[%d] %s.%s\n", memoryIndex, module, field)
	return nil
}

func (d *dumpDelegate) OnImportGlobal(index wasm.Index, module, field string, globalIndex wasm.Index, typ wasm.ValueType, mutable bool) error {
	fmt.Fprintf(d.out, "  import global[%d] %s.%s type=%s mutable=%v\n", globalIndex, module, field, wasm.ValueTypeName(typ), mutable)
	return nil
}

func (d *dumpDelegate) OnImportException(index wasm.Index, module, field string, exceptionIndex wasm.Index, sig []wasm.ValueType) error {
	fmt.Fprintf(d.out, "  import exception[%d] %s.%s\n", exceptionIndex, module, field)
	return nil
}

func (d *dumpDelegate) BeginFunctionSection(size uint32) error {
	fmt.Fprintf(d.out, "section function size=%d\n", size)
	return nil
}

func (d *dumpDelegate) OnFunction(index, sigIndex wasm.Index) error {
	fmt.Fprintf(d.out, "  func[%d] sig=%d\n", index, sigIndex)
	return nil
}

func (d *dumpDelegate) BeginExportSection(size uint32) error {
	fmt.Fprintf(d.out, "section export size=%d\n", size)
	return nil
}

func (d *dumpDelegate) OnExport(index wasm.Index, kind wasm.ExternKind, itemIndex wasm.Index, name string) error {
	fmt.Fprintf(d.out, "  export %s[%d] %q\n", wasm.ExternKindName(kind), itemIndex, name)
	return nil
}

func (d *dumpDelegate) BeginCodeSection(size uint32) error {
	fmt.Fprintf(d.out, "section code size=%d\n", size)
	return nil
}

func (d *dumpDelegate) BeginFunctionBody(index wasm.Index) error {
	fmt.Fprintf(d.out, "  func[%d] body\n", index)
	return nil
}

func (d *dumpDelegate) BeginCustomSection(size uint32, name string) error {
	fmt.Fprintf(d.out, "section custom %q size=%d\n", name, size)
	return nil
}

func (d *dumpDelegate) OnFunctionName(index wasm.Index, name string) error {
	fmt.Fprintf(d.out, "  name func[%d] = %q\n", index, name)
	return nil
}

func (d *dumpDelegate) OnLocalName(funcIndex, localIndex wasm.Index, name string) error {
	fmt.Fprintf(d.out, "  name func[%d] local[%d] = %q\n", funcIndex, localIndex, name)
	return nil
}

func valueTypesString(types []wasm.ValueType) string {
	s := "["
	for i, t := range types {
		if i > 0 {
			s += ", "
		}
		s += wasm.ValueTypeName(t)
	}
	return s + "]"
}

var _ binary.Delegate = (*dumpDelegate)(nil)
