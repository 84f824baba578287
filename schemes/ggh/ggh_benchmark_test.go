package ggh

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkGGH(b *testing.B) {

	var err error

	defaultParamsLiteral := testParameters

	if *flagParamString != "" {
		var jsonParams TestParametersLiteral
		if err = json.Unmarshal([]byte(*flagParamString), &jsonParams); err != nil {
			b.Fatal(err)
		}
		defaultParamsLiteral = []TestParametersLiteral{jsonParams} // the custom test suite reads the parameters from the -params flag
	}

	for _, paramsLit := range defaultParamsLiteral[:] {

		var params Parameters
		if params, err = NewParametersFromLiteral(paramsLit.ParametersLiteral); err != nil {
			b.Fatal(err)
		}

		tc, err := NewTestContext(params, paramsLit.Dim)
		require.NoError(b, err)

		for _, testSet := range []func(tc *TestContext, b *testing.B){
			benchKeyGenerator,
			benchEncryptor,
			benchDecryptor,
		} {
			testSet(tc, b)
			runtime.GC()
		}
	}
}

func benchKeyGenerator(tc *TestContext, b *testing.B) {

	params := tc.params
	kgen := tc.kgen

	b.Run(testString(params, tc.dim, "KeyGenerator/GenPrivateKey"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := kgen.GenPrivateKeyNew(tc.dim); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(testString(params, tc.dim, "KeyGenerator/GenPublicKey"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := kgen.GenPublicKeyNew(tc.sk); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func benchEncryptor(tc *TestContext, b *testing.B) {

	params := tc.params
	m := make([]int64, tc.dim)
	ct := make([]float64, tc.dim)

	b.Run(testString(params, tc.dim, "Encryptor/Encrypt"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := tc.enc.Encrypt(m, ct); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func benchDecryptor(tc *TestContext, b *testing.B) {

	params := tc.params

	ct, err := tc.enc.EncryptNew(make([]int64, tc.dim))
	require.NoError(b, err)

	pt := make([]float64, tc.dim)

	b.Run(testString(params, tc.dim, "Decryptor/NewDecryptor"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := NewDecryptor(params, tc.sk, tc.pk); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(testString(params, tc.dim, "Decryptor/Decrypt"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := tc.dec.Decrypt(ct, pt); err != nil {
				b.Fatal(err)
			}
		}
	})
}
