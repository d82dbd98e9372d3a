package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"

	"github.com/oriumgames/schembuild"
	"github.com/oriumgames/schembuild/format"
	"github.com/oriumgames/schembuild/voxel"
)

// buildPlan is the YAML description of a build: where the blocks come from,
// the transform pipeline to run, and how to export the result.
type buildPlan struct {
	Name       string      `yaml:"name"`
	Version    string      `yaml:"version"`
	Output     string      `yaml:"output"`
	Blocks     []planBlock `yaml:"blocks"`
	BlocksFile string      `yaml:"blocks-file"`
	Transforms []planStep  `yaml:"transforms"`
}

type planBlock struct {
	Pos [3]int `yaml:"pos"`
	ID  string `yaml:"id"`
}

type planStep struct {
	Op        string  `yaml:"op"`
	Offset    [3]int  `yaml:"offset"`
	Anchor    [3]int  `yaml:"anchor"`
	Pitch     float64 `yaml:"pitch"`
	Yaw       float64 `yaml:"yaw"`
	Roll      float64 `yaml:"roll"`
	Factors   [3]int  `yaml:"factors"`
	Connected bool    `yaml:"connected"`
	Hollow    bool    `yaml:"hollow"`
	Min       [3]int  `yaml:"min"`
	Max       [3]int  `yaml:"max"`
}

func loadPlan(path string) (*buildPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var plan buildPlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	if plan.Name == "" {
		return nil, fmt.Errorf("plan is missing a name")
	}
	if len(plan.Blocks) == 0 && plan.BlocksFile == "" {
		return nil, fmt.Errorf("plan lists no blocks and no blocks-file")
	}
	return &plan, nil
}

// run assembles the schematic, applies the transform pipeline in plan
// order and saves it.
func (plan *buildPlan) run(outDir string) (schembuild.ExportResult, error) {
	version := format.JE1_19_2
	if plan.Version != "" {
		v, err := format.ParseVersion(plan.Version)
		if err != nil {
			return schembuild.ExportResult{}, err
		}
		version = v
	}

	s := schembuild.New(version)

	fileBlocks, err := readBlocksFile(plan.BlocksFile)
	if err != nil {
		return schembuild.ExportResult{}, err
	}
	total := len(plan.Blocks) + len(fileBlocks)
	bar := progressbar.Default(int64(total), "placing blocks")
	for _, b := range append(fileBlocks, plan.Blocks...) {
		s.SetBlock(b.Pos[0], b.Pos[1], b.Pos[2], b.ID)
		bar.Add(1)
	}

	for i, step := range plan.Transforms {
		if err := applyStep(s, step); err != nil {
			return schembuild.ExportResult{}, fmt.Errorf("transform %d (%s): %w", i+1, step.Op, err)
		}
	}

	if outDir == "" {
		outDir = plan.Output
	}
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return schembuild.ExportResult{}, err
	}
	return s.Save(outDir, plan.Name)
}

func applyStep(s *schembuild.Schematic, step planStep) error {
	switch step.Op {
	case "translate":
		s.Translate(pos(step.Offset))
	case "center":
		s.Center()
	case "rotate":
		return s.RotateDegrees(pos(step.Anchor), step.Pitch, step.Yaw, step.Roll)
	case "scale":
		f := step.Factors
		if step.Connected {
			return s.ScaleConnected(pos(step.Anchor), f[0], f[1], f[2], step.Hollow)
		}
		return s.ScaleXYZ(pos(step.Anchor), f[0], f[1], f[2])
	case "crop":
		sub, err := s.Sub(pos(step.Min), pos(step.Max))
		if err != nil {
			return err
		}
		*s = *sub
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
	return nil
}

// readBlocksFile parses "x y z id" lines; blank lines and lines starting
// with # are skipped.
func readBlocksFile(path string) ([]planBlock, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var blocks []planBlock
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("%s:%d: want \"x y z id\", got %q", path, lineNo, line)
		}
		var b planBlock
		for i := range 3 {
			n, err := strconv.Atoi(fields[i])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad coordinate %q", path, lineNo, fields[i])
			}
			b.Pos[i] = n
		}
		b.ID = fields[3]
		blocks = append(blocks, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return blocks, nil
}

func pos(v [3]int) voxel.Pos {
	return voxel.Pos{X: v[0], Y: v[1], Z: v[2]}
}
