// Package reflection turns the reflection data of a linked program into typed
// slot descriptors.
//
// [Reflect] queries a [driver.Reflector] and produces a [Program]: vertex
// attribute slots, uniform block slots carrying the full member layout, and
// texture sampler slots carrying their sampler kind. Driver types without a
// translation are errors; they are never skipped.
package reflection
