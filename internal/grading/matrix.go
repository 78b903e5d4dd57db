package grading

import (
	"github.com/edufi/quiz-grading-service/internal/models"
)

// assessMatrix compares the submitted grid against the expected grid over
// the full fixed-size matrix area. All cells must match exactly; there is no
// partial credit. Cells outside a grid's actual bounds compare as empty, so
// a sparse submission still grades deterministically.
func (g *Grader) assessMatrix(answer *models.ItemAnswer, item *models.QuizItem) (float64, error) {
	if item.OptionCells == nil {
		return 0, ErrMissingSpecGrid
	}
	if answer.OptionCells == nil {
		return 0, ErrMissingAnswerGrid
	}

	for row := 0; row < models.MatrixSize; row++ {
		for column := 0; column < models.MatrixSize; column++ {
			if cellAt(item.OptionCells, row, column) != cellAt(answer.OptionCells, row, column) {
				return 0, nil
			}
		}
	}
	return 1, nil
}

func cellAt(grid [][]string, row, column int) string {
	if row >= len(grid) {
		return ""
	}
	if column >= len(grid[row]) {
		return ""
	}
	return grid[row][column]
}
