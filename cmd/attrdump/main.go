// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// attrdump decodes attribute configuration text and renders it as a tree.
// References cannot be resolved outside a running framework, so dicts of the
// form {'Type':'service',...} stay plain and are flagged on stderr.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/docopt/docopt-go"
	"github.com/pterm/pterm"

	"github.com/soclab/attrib"
)

const usage = `Dump attribute configuration text as a tree.

Usage:
  attrdump <file>
  attrdump -h | --help

Options:
  -h --help  Show this screen.`

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	path, _ := opts.String("<file>")

	attrib.SetReporter(attrib.NewLogReporter(log.New(os.Stderr)))

	data, err := os.ReadFile(path)
	if err != nil {
		pterm.Error.Printfln("read %s: %v", path, err)
		os.Exit(1)
	}
	root, err := attrib.DecodeText(string(data), nil)
	if err != nil {
		pterm.Error.Printfln("decode %s: %v", path, err)
		os.Exit(1)
	}
	if err := pterm.DefaultTree.WithRoot(node(path, root)).Render(); err != nil {
		pterm.Error.Printfln("render: %v", err)
		os.Exit(1)
	}
}

func node(label string, a *attrib.Attribute) pterm.TreeNode {
	switch a.Kind() {
	case attrib.KindList:
		children := make([]pterm.TreeNode, a.Len())
		for i := range children {
			children[i] = node(fmt.Sprintf("[%d]", i), a.At(i))
		}
		return pterm.TreeNode{
			Text:     fmt.Sprintf("%s list(%d)", label, a.Len()),
			Children: children,
		}
	case attrib.KindDict:
		children := make([]pterm.TreeNode, a.Len())
		for i := range children {
			children[i] = node(a.DictKey(i), a.DictValue(i))
		}
		return pterm.TreeNode{
			Text:     fmt.Sprintf("%s dict(%d)", label, a.Len()),
			Children: children,
		}
	}
	return pterm.TreeNode{Text: fmt.Sprintf("%s %s = %s", label, a.Kind(), a.String())}
}
