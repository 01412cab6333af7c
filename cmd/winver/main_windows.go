//go:build windows

// winver prints the version identity of the running Windows system.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	winver "github.com/winver/go-winver"
)

type snapshot struct {
	Version               string `json:"version"`
	Release               string `json:"release"`
	KernelVersion         string `json:"kernelVersion"`
	KernelRelease         string `json:"kernelRelease"`
	ServicePack           string `json:"servicePack,omitempty"`
	Suite                 string `json:"suite"`
	Architecture          string `json:"architecture"`
	Processors            uint32 `json:"processors"`
	ProcessorModel        string `json:"processorModel,omitempty"`
	AllocationGranularity uint32 `json:"allocationGranularity"`
	WOW64                 string `json:"wow64"`
}

func main() {
	var jsonOut bool

	root := &cobra.Command{
		Use:          "winver",
		Short:        "Print the running Windows version identity",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(jsonOut)
		},
	}
	root.Flags().BoolVar(&jsonOut, "json", false, "emit the snapshot as JSON")

	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func run(jsonOut bool) error {
	info := winver.Get()

	s := snapshot{
		Version:               info.VersionNumber.String(),
		Release:               info.Version.String(),
		KernelVersion:         winver.Kernel32VersionNumber().String(),
		KernelRelease:         winver.Kernel32Version().String(),
		ServicePack:           info.ServicePack.Text,
		Suite:                 info.Suite.String(),
		Architecture:          info.Architecture.String(),
		Processors:            info.Processors,
		ProcessorModel:        info.ProcessorModelName(),
		AllocationGranularity: info.AllocationGranularity,
		WOW64:                 info.WOW64.String(),
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	fmt.Printf("version:                %s (%s)\n", s.Version, s.Release)
	fmt.Printf("kernel32 version:       %s (%s)\n", s.KernelVersion, s.KernelRelease)
	if s.ServicePack != "" {
		fmt.Printf("service pack:           %s\n", s.ServicePack)
	}
	fmt.Printf("suite:                  %s\n", s.Suite)
	fmt.Printf("architecture:           %s\n", s.Architecture)
	fmt.Printf("processors:             %d\n", s.Processors)
	if s.ProcessorModel != "" {
		fmt.Printf("processor model:        %s\n", s.ProcessorModel)
	}
	fmt.Printf("allocation granularity: %d\n", s.AllocationGranularity)
	fmt.Printf("wow64:                  %s\n", s.WOW64)
	return nil
}
