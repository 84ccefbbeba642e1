// File: cmd/convert.go
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/driftline/rbcore/internal/observability"
	"github.com/driftline/rbcore/orient"
)

// json is the drop-in stdlib-compatible encoder used for all CLI output.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	convertQuat   string
	convertEuler  string
	convertMatrix string
	convertTo     string
	convertMethod string
)

// convertResult is the JSON envelope for a conversion. Only the requested
// representation is populated.
type convertResult struct {
	Quat   *orient.Quat  `json:"quat,omitempty"`
	Euler  *orient.Euler `json:"euler,omitempty"`
	Matrix *orient.Mat3  `json:"matrix,omitempty"`
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert between quaternion, rotation matrix and Euler angles",
	Long: `Convert a single orientation between its three representations.

Supply exactly one input with --quat "w,x,y,z", --euler "pitch,yaw,roll"
(radians) or --matrix "m00,m01,...,m22" (row-major), and pick the target
representation with --to. Matrix-to-quaternion extraction defaults to the
primary (Shepperd) method; --method legacy selects the unnegated variant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runConvert()
		if err != nil {
			return err
		}

		observability.GetLogger().Debug("Conversion complete", zap.String("to", convertTo))

		if cfg.Output.Format == "json" {
			return writeJSON(cmd, res)
		}
		writeConvertText(cmd, res)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertQuat, "quat", "", `input quaternion "w,x,y,z"`)
	convertCmd.Flags().StringVar(&convertEuler, "euler", "", `input Euler angles "pitch,yaw,roll" in radians`)
	convertCmd.Flags().StringVar(&convertMatrix, "matrix", "", `input rotation matrix, nine row-major values`)
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target representation: quat, euler or matrix")
	convertCmd.Flags().StringVar(&convertMethod, "method", "primary", "matrix-to-quaternion method: primary or legacy")
	_ = convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

// runConvert validates the flag set and performs the requested conversion.
func runConvert() (convertResult, error) {
	var res convertResult

	set := 0
	for _, f := range []string{convertQuat, convertEuler, convertMatrix} {
		if f != "" {
			set++
		}
	}
	if set != 1 {
		return res, fmt.Errorf("exactly one of --quat, --euler or --matrix is required")
	}

	extractor, err := extractorFor(convertMethod)
	if err != nil {
		return res, err
	}

	// Reduce every input to a rotation matrix first; it is the hub
	// representation both other forms convert through.
	var m orient.Mat3
	switch {
	case convertQuat != "":
		q, err := parseQuat(convertQuat)
		if err != nil {
			return res, err
		}
		if convertTo == "euler" {
			e := q.Euler()
			res.Euler = &e
			return res, nil
		}
		m = q.Mat3()
	case convertEuler != "":
		e, err := parseEuler(convertEuler)
		if err != nil {
			return res, err
		}
		m = e.Mat3()
	default:
		m, err = parseMatrix(convertMatrix)
		if err != nil {
			return res, err
		}
	}

	switch convertTo {
	case "quat":
		if convertQuat != "" {
			return res, fmt.Errorf("input is already a quaternion")
		}
		q := extractor.Quat(m)
		res.Quat = &q
	case "euler":
		if convertEuler != "" {
			return res, fmt.Errorf("input is already Euler angles")
		}
		e := extractor.Quat(m).Euler()
		res.Euler = &e
	case "matrix":
		if convertMatrix != "" {
			return res, fmt.Errorf("input is already a matrix")
		}
		res.Matrix = &m
	default:
		return res, fmt.Errorf("unknown target representation %q", convertTo)
	}
	return res, nil
}

// extractorFor maps the --method flag to an orient.Extractor.
func extractorFor(name string) (orient.Extractor, error) {
	switch name {
	case "primary":
		return orient.Shepperd, nil
	case "legacy":
		return orient.Legacy, nil
	default:
		return nil, fmt.Errorf("unknown extraction method %q (want primary or legacy)", name)
	}
}

// parseTuple parses a comma-separated list of exactly n floats.
func parseTuple(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated values, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseQuat(s string) (orient.Quat, error) {
	t, err := parseTuple(s, 4)
	if err != nil {
		return orient.Quat{}, fmt.Errorf("invalid --quat: %w", err)
	}
	return orient.Quat{W: t[0], X: t[1], Y: t[2], Z: t[3]}, nil
}

func parseEuler(s string) (orient.Euler, error) {
	t, err := parseTuple(s, 3)
	if err != nil {
		return orient.Euler{}, fmt.Errorf("invalid --euler: %w", err)
	}
	return orient.Euler{Pitch: t[0], Yaw: t[1], Roll: t[2]}, nil
}

func parseMatrix(s string) (orient.Mat3, error) {
	t, err := parseTuple(s, 9)
	if err != nil {
		return orient.Mat3{}, fmt.Errorf("invalid --matrix: %w", err)
	}
	var m orient.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = t[i*3+j]
		}
	}
	return m, nil
}

// writeJSON renders v to the command's stdout, honoring output.pretty.
func writeJSON(cmd *cobra.Command, v interface{}) error {
	var (
		data []byte
		err  error
	)
	if cfg.Output.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// writeConvertText renders a conversion result in plain text.
func writeConvertText(cmd *cobra.Command, res convertResult) {
	switch {
	case res.Quat != nil:
		cmd.Printf("quat: w=%.9g x=%.9g y=%.9g z=%.9g\n", res.Quat.W, res.Quat.X, res.Quat.Y, res.Quat.Z)
	case res.Euler != nil:
		cmd.Printf("euler: pitch=%.9g yaw=%.9g roll=%.9g\n", res.Euler.Pitch, res.Euler.Yaw, res.Euler.Roll)
	case res.Matrix != nil:
		for i := 0; i < 3; i++ {
			cmd.Printf("[% .9g % .9g % .9g]\n", res.Matrix[i][0], res.Matrix[i][1], res.Matrix[i][2])
		}
	}
}
