// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	rabc "github.com/Athesdrake/rabc"
	"github.com/spf13/cobra"
)

var (
	wantHeader  bool
	wantFrame   bool
	wantTags    bool
	wantAbc     bool
	wantSymbols bool
	wantAll     bool
	methodIdx   int
	fast        bool
	maxTagLen   uint32
)

func prettyPrint(buf []byte) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		log.Println("JSON parse error: ", err)
		return string(buf)
	}
	return pretty.String()
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func dumpMovie(filename string, cmd *cobra.Command) {
	log.Printf("processing %s", filename)

	m, err := rabc.New(filename, &rabc.Options{Fast: fast, MaxTagLength: maxTagLen})
	if err != nil {
		log.Printf("error opening %s: %s", filename, err)
		return
	}
	defer m.Close()

	if wantHeader || wantAll {
		b, _ := json.Marshal(struct {
			Compression string
			Version     uint8
			FileLength  uint32
		}{m.Compression.String(), m.Version, m.FileLength})
		fmt.Println(prettyPrint(b))
	}

	if wantFrame || wantAll {
		b, _ := json.Marshal(struct {
			FrameSize  rabc.Rect
			FrameRate  float64
			FrameCount uint16
		}{m.FrameSize, m.FrameRate, m.FrameCount})
		fmt.Println(prettyPrint(b))
	}

	if wantTags || wantAll {
		for _, tag := range m.Tags {
			fmt.Printf("tag id=0x%02x\n", tag.ID())
		}
	}

	if wantSymbols || wantAll {
		b, _ := json.Marshal(m.Symbols)
		fmt.Println(prettyPrint(b))
	}

	if wantAbc || wantAll {
		for _, tag := range m.Tags {
			abc, ok := tag.(rabc.DoABCTag)
			if !ok {
				continue
			}
			fmt.Printf("DoABC %q: %d methods, %d classes, %d scripts\n",
				abc.Name, len(abc.AbcFile.Methods), len(abc.AbcFile.Classes), len(abc.AbcFile.Scripts))
		}
	}
}

func disasmMovie(filename string, cmd *cobra.Command) {
	m, err := rabc.New(filename, &rabc.Options{Fast: fast, MaxTagLength: maxTagLen})
	if err != nil {
		log.Printf("error opening %s: %s", filename, err)
		return
	}
	defer m.Close()

	for _, tag := range m.Tags {
		abc, ok := tag.(rabc.DoABCTag)
		if !ok {
			continue
		}
		for i, method := range abc.AbcFile.Methods {
			if methodIdx >= 0 && i != methodIdx {
				continue
			}
			if !method.HasBody {
				continue
			}
			instructions, err := rabc.Disassemble(method.Code)
			if err != nil {
				log.Printf("method %d: disassembly failed: %s", i, err)
				continue
			}
			fmt.Printf("method %d (%d instructions):\n", i, len(instructions))
			for _, ins := range instructions {
				fmt.Printf("  %04x: %02x\n", ins.Addr, ins.Opcode)
			}
		}
	}
}

func walk(filePath string, process func(string, *cobra.Command), cmd *cobra.Command) {
	if !isDirectory(filePath) {
		process(filePath, cmd)
		return
	}

	var files []string
	filepath.Walk(filePath, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	for _, f := range files {
		process(f, cmd)
	}
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "rabcdump",
		Short: "An SWF/ABC bytecode parser",
		Long:  "Parses SWF containers and AVM2 ActionScript 3 bytecode",
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("rabcdump 0.1.0")
		},
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump [file or directory]",
		Short: "Dumps a SWF file's structure",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			walk(args[0], dumpMovie, cmd)
		},
	}

	var disasmCmd = &cobra.Command{
		Use:   "disasm [file or directory]",
		Short: "Disassembles every AVM2 method body in a SWF file",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			walk(args[0], disasmMovie, cmd)
		},
	}

	dumpCmd.Flags().BoolVarP(&wantHeader, "header", "", false, "dump the container header")
	dumpCmd.Flags().BoolVarP(&wantFrame, "frame", "", false, "dump the stage frame size/rate/count")
	dumpCmd.Flags().BoolVarP(&wantTags, "tags", "", false, "list every tag's id")
	dumpCmd.Flags().BoolVarP(&wantAbc, "abc", "", false, "summarize every embedded ABC file")
	dumpCmd.Flags().BoolVarP(&wantSymbols, "symbols", "", false, "dump the character-id to class-name table")
	dumpCmd.Flags().BoolVarP(&wantAll, "all", "", false, "dump everything")

	disasmCmd.Flags().IntVarP(&methodIdx, "method", "m", -1, "disassemble only this method index")

	rootCmd.PersistentFlags().BoolVarP(&fast, "fast", "", false, "skip collecting method body exception/trait metadata")
	rootCmd.PersistentFlags().Uint32VarP(&maxTagLen, "max-tag-length", "", 0, "reject tags whose declared length exceeds this (0 = unbounded)")

	rootCmd.AddCommand(versionCmd, dumpCmd, disasmCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
