package main

import (
	"github.com/reusee/typenames/cmds"
)

type jobKind string

const (
	jobYAML     jobKind = "yaml"
	jobCUE      jobKind = "cue"
	jobStarlark jobKind = "expr"
	jobFile     jobKind = "file"
)

type job struct {
	kind jobKind
	arg  string
	// lookup path of cue jobs
	expr string
}

var (
	jobs    []job
	cuePath string
	tap     bool
)

func init() {
	cmds.Define("yaml", cmds.Func(func(path string) {
		jobs = append(jobs, job{kind: jobYAML, arg: path})
	}).Desc("name top-level values of a YAML file"))

	cmds.Define("cue", cmds.Func(func(path string) {
		jobs = append(jobs, job{kind: jobCUE, arg: path, expr: cuePath})
	}).Desc("name fields of a CUE file"))

	cmds.Define("path", cmds.Func(func(expr string) {
		cuePath = expr
	}).Desc("CUE path to look up in the cue files given after it"))

	cmds.Define("expr", cmds.Func(func(src string) {
		jobs = append(jobs, job{kind: jobStarlark, arg: src})
	}).Desc("name the value of a Starlark expression"))

	cmds.Define("file", cmds.Func(func(path string) {
		jobs = append(jobs, job{kind: jobFile, arg: path})
	}).Desc("name a file handle before and after closing it"))

	cmds.Define("parallel", cmds.Func(func(n int) {
		parallelFlag = n
	}).Desc("number of inputs inspected at the same time"))

	cmds.Define("tap", cmds.Func(func() {
		tap = true
	}).Desc("open a Starlark REPL with the rows"))
}
