package utils

import "fmt"

// RunAndWrapOnError runs runFn and wraps its error around existingErr, so
// cleanup failures are not silently dropped.
func RunAndWrapOnError(runFn func() error, existingErr error) error {
	if runErr := runFn(); runErr != nil {
		if existingErr == nil {
			return runErr
		}
		return fmt.Errorf(`failed to run because "%v" with existing err "%w"`, runErr, existingErr)
	}
	return existingErr
}
