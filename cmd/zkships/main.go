package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/spf13/cobra"

	"github.com/zkships/core/pkg/prover"
	"github.com/zkships/core/pkg/types"
)

// boardProofFile is the local JSON encoding the CLI round-trips through
// files. It is not a wire protocol — just a concrete shape for this
// binary's own --out/verify flags.
type boardProofFile struct {
	Cx       string `json:"cx"`
	Cy       string `json:"cy"`
	Proof    string `json:"proof"`
	Trapdoor string `json:"trapdoor,omitempty"`
}

type shotProofFile struct {
	Cx             string `json:"cx"`
	Cy             string `json:"cy"`
	ShotCommitment string `json:"shot_commitment"`
	Hit            int64  `json:"hit"`
	Proof          string `json:"proof"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "zkships",
		Short: "Prove and verify Battleship board and shot commitments",
	}

	rootCmd.AddCommand(boardCmd(), shotCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func boardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Prove or verify a board placement commitment",
	}
	cmd.AddCommand(boardProveCmd(), boardVerifyCmd())
	return cmd
}

func shotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shot",
		Short: "Prove or verify a shot resolution against a board commitment",
	}
	cmd.AddCommand(shotProveCmd(), shotVerifyCmd())
	return cmd
}

func boardProveCmd() *cobra.Command {
	var carrier, battleship, cruiser, submarine, destroyer string
	var out string

	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Prove a fleet placement is valid and produce its commitment",
		RunE: func(cmd *cobra.Command, args []string) error {
			placements, err := parseFleet(carrier, battleship, cruiser, submarine, destroyer)
			if err != nil {
				return err
			}

			fmt.Println("Proving board placement...")
			boardProof, err := prover.ProveBoard(placements)
			if err != nil {
				return fmt.Errorf("proving board: %w", err)
			}

			proofBytes, err := marshalProof(boardProof.Proof)
			if err != nil {
				return fmt.Errorf("encoding proof: %w", err)
			}

			file := boardProofFile{
				Cx:       hexEncode(boardProof.Commitment.Cx),
				Cy:       hexEncode(boardProof.Commitment.Cy),
				Proof:    hex.EncodeToString(proofBytes),
				Trapdoor: hexEncode(boardProof.Trapdoor),
			}
			fmt.Printf("Commitment: (%s, %s)\n", file.Cx, file.Cy)
			fmt.Println("Keep the trapdoor private; shot proofs against this board need it.")
			return writeJSON(out, file)
		},
	}
	cmd.Flags().StringVar(&carrier, "carrier", "", "Carrier placement as x,y,z (z = true for vertical)")
	cmd.Flags().StringVar(&battleship, "battleship", "", "Battleship placement as x,y,z")
	cmd.Flags().StringVar(&cruiser, "cruiser", "", "Cruiser placement as x,y,z")
	cmd.Flags().StringVar(&submarine, "submarine", "", "Submarine placement as x,y,z")
	cmd.Flags().StringVar(&destroyer, "destroyer", "", "Destroyer placement as x,y,z")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output JSON file (defaults to stdout)")
	return cmd
}

func boardVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [proof.json]",
		Short: "Verify a board proof against its commitment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file boardProofFile
			if err := readJSON(args[0], &file); err != nil {
				return err
			}

			cx, err := hexDecode(file.Cx)
			if err != nil {
				return fmt.Errorf("parsing cx: %w", err)
			}
			cy, err := hexDecode(file.Cy)
			if err != nil {
				return fmt.Errorf("parsing cy: %w", err)
			}
			proofBytes, err := hex.DecodeString(file.Proof)
			if err != nil {
				return fmt.Errorf("parsing proof: %w", err)
			}
			proof, err := unmarshalProof(proofBytes)
			if err != nil {
				return fmt.Errorf("decoding proof: %w", err)
			}

			err = prover.VerifyBoard(prover.BoardCommitment{Cx: cx, Cy: cy}, proof)
			if err != nil {
				fmt.Println("REJECTED:", err)
				return err
			}
			fmt.Println("ACCEPTED")
			return nil
		},
	}
	return cmd
}

func shotProveCmd() *cobra.Command {
	var carrier, battleship, cruiser, submarine, destroyer string
	var trapdoorHex string
	var x, y int
	var hit bool
	var out string

	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Prove a shot's hit status against a previously committed board",
		RunE: func(cmd *cobra.Command, args []string) error {
			placements, err := parseFleet(carrier, battleship, cruiser, submarine, destroyer)
			if err != nil {
				return err
			}
			trapdoor, err := hexDecode(trapdoorHex)
			if err != nil {
				return fmt.Errorf("parsing trapdoor: %w", err)
			}

			fmt.Printf("Proving shot at (%d, %d)...\n", x, y)
			shotProof, err := prover.ProveShot(placements, trapdoor, x, y, hit)
			if err != nil {
				return fmt.Errorf("proving shot: %w", err)
			}

			proofBytes, err := marshalProof(shotProof.Proof)
			if err != nil {
				return fmt.Errorf("encoding proof: %w", err)
			}

			file := shotProofFile{
				Cx:             hexEncode(shotProof.Public.Cx),
				Cy:             hexEncode(shotProof.Public.Cy),
				ShotCommitment: hexEncode(shotProof.Public.ShotCommitment),
				Hit:            shotProof.Public.Hit,
				Proof:          hex.EncodeToString(proofBytes),
			}
			fmt.Printf("Hit: %d\n", file.Hit)
			return writeJSON(out, file)
		},
	}
	cmd.Flags().StringVar(&carrier, "carrier", "", "Carrier placement as x,y,z")
	cmd.Flags().StringVar(&battleship, "battleship", "", "Battleship placement as x,y,z")
	cmd.Flags().StringVar(&cruiser, "cruiser", "", "Cruiser placement as x,y,z")
	cmd.Flags().StringVar(&submarine, "submarine", "", "Submarine placement as x,y,z")
	cmd.Flags().StringVar(&destroyer, "destroyer", "", "Destroyer placement as x,y,z")
	cmd.Flags().StringVar(&trapdoorHex, "trapdoor", "", "Hex-encoded trapdoor from the board proof")
	cmd.Flags().IntVar(&x, "x", 0, "Shot column")
	cmd.Flags().IntVar(&y, "y", 0, "Shot row")
	cmd.Flags().BoolVar(&hit, "hit", false, "Asserted hit status")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output JSON file (defaults to stdout)")
	return cmd
}

func shotVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [proof.json]",
		Short: "Verify a shot proof against its public outputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file shotProofFile
			if err := readJSON(args[0], &file); err != nil {
				return err
			}

			cx, err := hexDecode(file.Cx)
			if err != nil {
				return fmt.Errorf("parsing cx: %w", err)
			}
			cy, err := hexDecode(file.Cy)
			if err != nil {
				return fmt.Errorf("parsing cy: %w", err)
			}
			shotCommitment, err := hexDecode(file.ShotCommitment)
			if err != nil {
				return fmt.Errorf("parsing shot commitment: %w", err)
			}
			proofBytes, err := hex.DecodeString(file.Proof)
			if err != nil {
				return fmt.Errorf("parsing proof: %w", err)
			}
			proof, err := unmarshalProof(proofBytes)
			if err != nil {
				return fmt.Errorf("decoding proof: %w", err)
			}

			public := prover.ShotPublicOutputs{
				Cx: cx, Cy: cy,
				ShotCommitment: shotCommitment,
				Hit:            file.Hit,
			}
			if err := prover.VerifyShot(public, proof); err != nil {
				fmt.Println("REJECTED:", err)
				return err
			}
			fmt.Println("ACCEPTED")
			return nil
		},
	}
	return cmd
}

// parseFleet turns five "x,y,z" strings (or "" for unplaced) into the
// [5]*types.Placement the Prover API expects, in types.Kinds order.
func parseFleet(carrier, battleship, cruiser, submarine, destroyer string) ([5]*types.Placement, error) {
	raw := [5]string{carrier, battleship, cruiser, submarine, destroyer}
	var out [5]*types.Placement
	for i, s := range raw {
		if s == "" {
			continue
		}
		p, err := parsePlacement(s)
		if err != nil {
			return out, fmt.Errorf("%s: %w", types.Kinds[i].Name(), err)
		}
		out[i] = p
	}
	return out, nil
}

func parsePlacement(s string) (*types.Placement, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected x,y,z, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("y: %w", err)
	}
	z, err := strconv.ParseBool(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, fmt.Errorf("z: %w", err)
	}
	return &types.Placement{X: x, Y: y, Z: z}, nil
}

func hexEncode(v *big.Int) string {
	return hex.EncodeToString(v.Bytes())
}

func hexDecode(s string) (*big.Int, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

func marshalProof(proof plonk.Proof) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unmarshalProof(data []byte) (plonk.Proof, error) {
	proof := plonk.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return proof, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Written to %s\n", path)
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
