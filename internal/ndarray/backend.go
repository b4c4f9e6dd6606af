package ndarray

// Backend defines the compute operations built on top of Array views.
// View operations (Pick, Transpose, Reshape, ...) live on Array itself;
// everything that produces new values goes through a Backend.
//
// Implementations:
//   - CPU: pure Go, single-threaded (internal/backend/cpu)
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *Array) (*Array, error)
	Sub(a, b *Array) (*Array, error)
	Mul(a, b *Array) (*Array, error)
	Div(a, b *Array) (*Array, error)
	Mod(a, b *Array) (*Array, error)
	Pow(a, b *Array) (*Array, error)
	EqualElements(a, b *Array) (*Array, error) // uint8 mask, 1 where equal

	// Scalar operations (element-wise with scalar).
	AddScalar(x *Array, s float64) *Array
	SubScalar(x *Array, s float64) *Array
	MulScalar(x *Array, s float64) *Array
	DivScalar(x *Array, s float64) *Array
	ModScalar(x *Array, s float64) *Array
	PowScalar(x *Array, s float64) *Array

	// Unary math. Transcendental functions promote integers to float64.
	Exp(x *Array) *Array
	Log(x *Array) *Array
	Sqrt(x *Array) *Array
	Sin(x *Array) *Array
	Cos(x *Array) *Array
	Tan(x *Array) *Array
	Arcsin(x *Array) *Array
	Arccos(x *Array) *Array
	Arctan(x *Array) *Array
	Tanh(x *Array) *Array
	Negative(x *Array) *Array
	Abs(x *Array) *Array
	Round(x *Array) *Array

	// Activations.
	Sigmoid(x *Array, t float64) *Array
	LeakyRelu(x *Array, alpha float64) *Array
	Clip(x *Array, lo, hi float64) *Array
	Softmax(x *Array) *Array

	// Reductions over all elements.
	Sum(x *Array) float64
	Mean(x *Array) float64
	Std(x *Array, ddof int) float64
	Min(x *Array) (float64, error)
	Max(x *Array) (float64, error)
	Equal(a, b *Array) bool

	// Linear algebra.
	Dot(a, b *Array) (*Array, error)
	Concatenate(arrays []*Array, axis int) (*Array, error)
	Stack(arrays []*Array, axis int) (*Array, error)

	// Signal processing.
	Convolve(x, kernel *Array) (*Array, error)
	FFTConvolve(x, kernel *Array) (*Array, error)
	FFT(x *Array) (*Array, error)
	IFFT(x *Array) (*Array, error)

	// Metadata.
	Name() string
}
