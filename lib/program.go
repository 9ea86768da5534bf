package lib

import (
	"os"
	"path"
)

// Program bundles a source file with its parsed form.
type Program struct {
	Path   string
	Source string
	AST    []Expression
}

func ReadProgramsFromDir(dir string) ([]Program, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	programs := []Program{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		program, err := ReadProgramFromFile(path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}

	return programs, nil
}

func ReadProgramFromFile(filePath string) (Program, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return Program{}, err
	}
	program := Program{
		Path:   filePath,
		Source: string(bytes),
	}

	expressions, err := ParseString(program.Source)
	if err != nil {
		return Program{}, err
	}
	program.AST = expressions

	return program, nil
}
