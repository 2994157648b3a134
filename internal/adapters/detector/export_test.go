// export_test.go exports private constructors for white-box testing.
package detector

// NewEnvAt exports newEnvAt so tests can point the detector at a fixture.
var NewEnvAt = newEnvAt
