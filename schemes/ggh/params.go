package ggh

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"

	"github.com/tuneinsight/ggh/utils"
	"github.com/tuneinsight/ggh/utils/buffer"
)

const (
	// DefaultFactors is the default number of unimodular factors composing the public transform.
	DefaultFactors = 5

	// DefaultSampleBound is the default bound B of the interval [-B, B) from which the
	// coefficients of the candidate unimodular factors are sampled.
	DefaultSampleBound = 5

	// DefaultMaxAttempts is the default number of candidate factors sampled before
	// the public key derivation gives up.
	DefaultMaxAttempts = 1 << 20

	// DefaultTolerance is the default threshold under which the absolute value of a
	// determinant is considered to be zero.
	DefaultTolerance = 1e-9

	// DefaultPrivateBound is the default bound L of the perturbation [-L, L] added
	// to the scaled identity by [KeyGenerator.GenPrivateKeyNew].
	DefaultPrivateBound = 4
)

// DefaultErrorMagnitude is the magnitude of the alternating error vector used when
// no error vector is specified.
const DefaultErrorMagnitude int64 = 1

// ParametersLiteral is a literal representation of GGH parameters. It has public fields and
// is used to express unchecked user-defined parameters literally into Go programs.
// The [NewParametersFromLiteral] function is used to generate the actual checked parameters
// from the literal representation.
//
// All fields are optional. If left unset, default values are substituted at parameter
// creation (see [NewParametersFromLiteral]):
//   - ErrorVector: the alternating vector {+1, -1, +1, ...} of the dimension of the keys.
//     If set, only keys of dimension len(ErrorVector) can be used to encrypt.
//   - Factors: [DefaultFactors].
//   - SampleBound: [DefaultSampleBound].
//   - MaxAttempts: [DefaultMaxAttempts].
//   - Tolerance: [DefaultTolerance].
//   - PrivateBound: [DefaultPrivateBound].
type ParametersLiteral struct {
	ErrorVector  []int64 `json:",omitempty"`
	Factors      int     `json:",omitempty"`
	SampleBound  int64   `json:",omitempty"`
	MaxAttempts  int     `json:",omitempty"`
	Tolerance    float64 `json:",omitempty"`
	PrivateBound int64   `json:",omitempty"`
}

// Parameters represents a set of GGH parameters. Its fields are private and
// immutable. See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	errorVector  []int64
	factors      int
	sampleBound  int64
	maxAttempts  int
	tolerance    float64
	privateBound int64
}

// NewParametersFromLiteral instantiate a set of GGH parameters from a [ParametersLiteral] specification.
// It returns the empty parameters [Parameters]{} and a non-nil error if the specified parameters are invalid.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	params = Parameters{
		factors:      DefaultFactors,
		sampleBound:  DefaultSampleBound,
		maxAttempts:  DefaultMaxAttempts,
		tolerance:    DefaultTolerance,
		privateBound: DefaultPrivateBound,
	}

	if len(pl.ErrorVector) != 0 {
		params.errorVector = make([]int64, len(pl.ErrorVector))
		copy(params.errorVector, pl.ErrorVector)
	}

	switch {
	case pl.Factors < 0:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: Factors must be positive but is %d", pl.Factors)
	case pl.Factors > 0:
		params.factors = pl.Factors
	}

	switch {
	case pl.SampleBound < 0:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: SampleBound must be positive but is %d", pl.SampleBound)
	case pl.SampleBound > 0:
		params.sampleBound = pl.SampleBound
	}

	switch {
	case pl.MaxAttempts < 0:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: MaxAttempts must be positive but is %d", pl.MaxAttempts)
	case pl.MaxAttempts > 0:
		params.maxAttempts = pl.MaxAttempts
	}

	if params.maxAttempts < params.factors {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: MaxAttempts=%d is smaller than Factors=%d", params.maxAttempts, params.factors)
	}

	switch {
	case pl.Tolerance < 0:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: Tolerance must be positive but is %v", pl.Tolerance)
	case pl.Tolerance > 0:
		params.tolerance = pl.Tolerance
	}

	switch {
	case pl.PrivateBound < 0:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: PrivateBound must be positive but is %d", pl.PrivateBound)
	case pl.PrivateBound > 0:
		params.privateBound = pl.PrivateBound
	}

	return
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {

	var errorVector []int64
	if len(p.errorVector) != 0 {
		errorVector = make([]int64, len(p.errorVector))
		copy(errorVector, p.errorVector)
	}

	return ParametersLiteral{
		ErrorVector:  errorVector,
		Factors:      p.factors,
		SampleBound:  p.sampleBound,
		MaxAttempts:  p.maxAttempts,
		Tolerance:    p.tolerance,
		PrivateBound: p.privateBound,
	}
}

// Factors returns the number of unimodular factors of the public transform.
func (p Parameters) Factors() int {
	return p.factors
}

// SampleBound returns the bound B of the sampling interval [-B, B) of the unimodular factors.
func (p Parameters) SampleBound() int64 {
	return p.sampleBound
}

// MaxAttempts returns the maximum number of candidate factors sampled during a public key derivation.
func (p Parameters) MaxAttempts() int {
	return p.maxAttempts
}

// Tolerance returns the threshold under which a determinant is considered to be zero.
func (p Parameters) Tolerance() float64 {
	return p.tolerance
}

// PrivateBound returns the bound L of the perturbation of the private bases sampled by [KeyGenerator.GenPrivateKeyNew].
func (p Parameters) PrivateBound() int64 {
	return p.privateBound
}

// ErrorVector returns a copy of the error vector added to the lattice points
// at encryption for keys of dimension n.
// It returns an error wrapping [ErrDimensionMismatch] if a fixed error vector
// of a different dimension was specified.
func (p Parameters) ErrorVector(n int) (e []int64, err error) {

	if len(p.errorVector) == 0 {
		return utils.AlternatingSigns(DefaultErrorMagnitude, n), nil
	}

	if len(p.errorVector) != n {
		return nil, fmt.Errorf("%w: error vector has length %d but keys have dimension %d", ErrDimensionMismatch, len(p.errorVector), n)
	}

	e = make([]int64, n)
	copy(e, p.errorVector)

	return
}

// ErrorBound returns the infinity norm of the error vector.
func (p Parameters) ErrorBound() int64 {

	if len(p.errorVector) == 0 {
		return DefaultErrorMagnitude
	}

	return utils.MaxAbsSlice(p.errorVector)
}

// Equal compares two sets of parameters for equality.
func (p Parameters) Equal(other *Parameters) (res bool) {
	res = cmp.Equal(p.errorVector, other.errorVector)
	res = res && (p.factors == other.factors)
	res = res && (p.sampleBound == other.sampleBound)
	res = res && (p.maxAttempts == other.maxAttempts)
	res = res && (p.tolerance == other.tolerance)
	res = res && (p.privateBound == other.privateBound)
	return
}

// MarshalBinary returns a []byte representation of the parameter set.
// This representation corresponds to the [Parameters.MarshalJSON] representation.
func (p Parameters) MarshalBinary() ([]byte, error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err := p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes on the target Parameters.
func (p *Parameters) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (p Parameters) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		bytes, err := p.MarshalJSON()
		if err != nil {
			return 0, err
		}

		if n, err = buffer.WriteUint32(w, uint32(len(bytes))); err != nil {
			return n, fmt.Errorf("buffer.WriteUint32: %w", err)
		}

		var inc int64
		if inc, err = buffer.Write(w, bytes); err != nil {
			return n + inc, fmt.Errorf("buffer.Write: %w", err)
		}

		n += inc

		return n, w.Flush()
	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see ggh/utils/buffer/reader.go),
// it will be wrapped into a bufio.Reader.
func (p *Parameters) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var size uint32
		if n, err = buffer.ReadUint32(r, &size); err != nil {
			return n, fmt.Errorf("buffer.ReadUint32: %w", err)
		}

		bytes := make([]byte, size)

		var inc int64
		if inc, err = buffer.Read(r, bytes); err != nil {
			return n + inc, fmt.Errorf("buffer.Read: %w", err)
		}

		return n + inc, p.UnmarshalJSON(bytes)

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// BinarySize returns size in bytes of the marshalled [Parameters] object.
func (p Parameters) BinarySize() int {
	// XXX: Byte size is hard to predict without marshalling.
	b, _ := p.MarshalJSON()
	return 4 + len(b)
}
