package matching

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type RawInstance struct {
	A       []int64
	B       []int64
	C       []int64
	Triples [][]int64
}

type Instance struct {
	A       Set[int64]
	B       Set[int64]
	C       Set[int64]
	Triples [][3]int64 // Order of the triples fixes the family's indices
}

func InstanceFromJson(file string) (Instance, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Instance{}, fmt.Errorf("cannot read instance file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Instance{}, fmt.Errorf("cannot parse instance file: %w", err)
	}

	var rawInstance RawInstance
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.DecodeHookFuncType(integralElementHook),
		Result:     &rawInstance,
	})
	if err != nil {
		return Instance{}, fmt.Errorf("cannot build instance decoder: %w", err)
	}
	if err := decoder.Decode(inputJson); err != nil {
		return Instance{}, ErrInvalidInstance.New(err.Error())
	}
	return ProcessRawInstance(rawInstance)
}

// JSON numbers arrive as float64; mapstructure would truncate them into int64 elements
func integralElementHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 || to.Kind() != reflect.Int64 {
		return data, nil
	}
	number := data.(float64)
	if number != math.Trunc(number) || number < math.MinInt64 || number >= float64(math.MaxInt64) {
		return nil, fmt.Errorf("%v is not an integer element", number)
	}
	return int64(number), nil
}

func ProcessRawInstance(rawInstance RawInstance) (Instance, error) {
	instance := Instance{}
	for _, tuple := range []lo.Tuple2[[]int64, *Set[int64]]{
		lo.T2(rawInstance.A, &instance.A),
		lo.T2(rawInstance.B, &instance.B),
		lo.T2(rawInstance.C, &instance.C),
	} {
		elements, set := tuple.A, tuple.B
		// Make sure the listed elements form a set
		if duplicates := lo.FindDuplicates(elements); len(duplicates) > 0 {
			return Instance{}, ErrInvalidInstance.New(fmt.Sprintf("elements %v are listed more than once in %v", duplicates, elements))
		}
		*set = NewSet(elements...)
	}

	instance.Triples = make([][3]int64, 0, len(rawInstance.Triples))
	for i, rawTriple := range rawInstance.Triples {
		if len(rawTriple) != 3 {
			return Instance{}, ErrInvalidInstance.New(fmt.Sprintf("triple %d has %d elements: %v", i, len(rawTriple), rawTriple))
		}
		instance.Triples = append(instance.Triples, [3]int64(rawTriple))
	}

	return instance, nil
}
