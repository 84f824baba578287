package ggh

var (
	// ExampleParameters are the parameters of the reference configuration: a fixed
	// three-dimensional error vector {1, -1, 1} and five unimodular factors with
	// coefficients sampled in [-5, 5).
	ExampleParameters = ParametersLiteral{
		ErrorVector: []int64{1, -1, 1},
		Factors:     5,
		SampleBound: 5,
	}

	// ExampleBasis is a well reduced private basis of dimension three.
	ExampleBasis = [][]int64{
		{7, 0, 0},
		{0, 5, 0},
		{0, 0, 3},
	}

	// ExampleMessage is a message of dimension three.
	ExampleMessage = []int64{3, -2, 1}
)
