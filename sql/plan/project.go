// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plan

import (
	"strings"

	"github.com/suyanNone/logicalplan/sql"
)

// Project projects a list of expressions from its child's rows.
type Project struct {
	UnaryNode
	ProjectList []sql.Expression
}

// NewProject creates a new Project.
func NewProject(projectList []sql.Expression, child sql.Node) *Project {
	return &Project{UnaryNode: UnaryNode{child}, ProjectList: projectList}
}

func (p *Project) Expressions() []sql.Expression { return p.ProjectList }
func (p *Project) Schema() sql.Schema            { return schemaOf(outputOf(p.ProjectList)) }
func (p *Project) Output() []sql.Expression      { return outputOf(p.ProjectList) }

func (p *Project) Resolved() bool {
	return p.Child.Resolved() && sql.ExpressionsResolved(p.ProjectList...)
}

func (p *Project) String() string {
	var parts []string
	for _, e := range p.ProjectList {
		parts = append(parts, e.String())
	}
	return "Project(" + strings.Join(parts, ", ") + ")"
}

func (p *Project) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("Project", children, 1); err != nil {
		return nil, err
	}
	return &Project{UnaryNode: UnaryNode{children[0]}, ProjectList: p.ProjectList}, nil
}

func (p *Project) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("Project", exprs, len(p.ProjectList)); err != nil {
		return nil, err
	}
	return &Project{UnaryNode: p.UnaryNode, ProjectList: exprs}, nil
}
