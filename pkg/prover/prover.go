// Package prover wraps gnark's PLONK backend around BoardCircuit and
// ShotCircuit so callers never touch frontend.Compile or backend/plonk
// directly. One Keys value is produced per circuit shape by Setup and
// reused across every proof of that shape.
package prover

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/test/unsafekzg"

	"github.com/zkships/core/internal/log"
)

var (
	// ErrCompilation wraps a failure to arithmetize a circuit into a
	// constraint system.
	ErrCompilation = errors.New("circuit compilation failed")
	// ErrSetup wraps a failure to produce the KZG SRS or the PLONK
	// proving/verifying key pair for a compiled circuit.
	ErrSetup = errors.New("circuit setup failed")
	// ErrProofGeneration wraps a failure to build a witness or produce a
	// proof from it. A malicious or malformed private witness surfaces
	// here as a constraint failure, not a panic.
	ErrProofGeneration = errors.New("proof generation failed")
	// ErrVerification wraps proof rejection. Verify never panics; every
	// failure mode, from a malformed proof to a genuine constraint
	// violation, returns this sentinel.
	ErrVerification = errors.New("proof verification failed")
)

// Keys bundles the compiled constraint system and the PLONK key pair for
// one circuit shape (BoardCircuit or ShotCircuit). Produced once by
// Setup, then reused by Prove and Verify for every proof of that shape.
type Keys struct {
	ccs constraint.ConstraintSystem
	pk  plonk.ProvingKey
	vk  plonk.VerifyingKey
}

// Setup compiles circuit and derives a KZG SRS sized to the resulting
// constraint system, then runs the PLONK key-generation ceremony. The SRS
// here is generated locally from ephemeral randomness (gnark's
// test/unsafekzg helper) rather than loaded from a public ceremony
// transcript — see DESIGN.md for why that's the right call for this
// module and what a production deployment would swap in instead.
func Setup(circuit frontend.Circuit) (*Keys, error) {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompilation, err)
	}

	srs, srsLagrange, err := unsafekzg.NewSRS(ccs)
	if err != nil {
		return nil, fmt.Errorf("%w: deriving SRS: %v", ErrSetup, err)
	}

	pk, vk, err := plonk.Setup(ccs, srs, srsLagrange)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSetup, err)
	}

	log.Info("circuit setup complete",
		log.F("constraints", ccs.GetNbConstraints()),
		log.F("public_variables", ccs.GetNbPublicVariables()),
	)
	return &Keys{ccs: ccs, pk: pk, vk: vk}, nil
}

// Prove builds a full witness from assignment (private and public fields
// both populated) and produces a PLONK proof against keys.
func Prove(keys *Keys, assignment frontend.Circuit) (plonk.Proof, error) {
	witness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("%w: building witness: %v", ErrProofGeneration, err)
	}

	proof, err := plonk.Prove(keys.ccs, keys.pk, witness)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProofGeneration, err)
	}
	log.Debug("proof generated")
	return proof, nil
}

// Verify checks proof against the public fields of publicAssignment
// (private fields are ignored — only fields tagged gnark:",public" are
// read). It never panics: every rejection reason, malformed proof or
// genuine constraint violation, is reported through ErrVerification.
func Verify(keys *Keys, proof plonk.Proof, publicAssignment frontend.Circuit) error {
	publicWitness, err := frontend.NewWitness(publicAssignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("%w: building public witness: %v", ErrVerification, err)
	}

	if err := plonk.Verify(proof, keys.vk, publicWitness); err != nil {
		log.Warn("proof rejected", log.F("reason", err.Error()))
		return fmt.Errorf("%w: %v", ErrVerification, err)
	}
	log.Debug("proof accepted")
	return nil
}
