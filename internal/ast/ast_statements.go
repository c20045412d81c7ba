package ast

// ExprStmt evaluates an expression. A nil Expr is the empty statement.
type ExprStmt struct {
	Pos
	Expr Expr
}

func (s *ExprStmt) Kind() string     { return "expr_stmt" }
func (s *ExprStmt) Accept(v Visitor) { v.VisitExprStmt(s) }
func (s *ExprStmt) stmtNode()        {}

type IfStmt struct {
	Pos
	Cond   Expr
	Then   Stmt
	Elsifs []*ElsifItem
	Else   *ElseItem
}

func (s *IfStmt) Kind() string     { return "if_stmt" }
func (s *IfStmt) Accept(v Visitor) { v.VisitIfStmt(s) }
func (s *IfStmt) stmtNode()        {}

type ElsifItem struct {
	Pos
	Cond Expr
	Body Stmt
}

func (e *ElsifItem) Kind() string     { return "elsif_item" }
func (e *ElsifItem) Accept(v Visitor) { v.VisitElsifItem(e) }

type ElseItem struct {
	Pos
	Body Stmt
}

func (e *ElseItem) Kind() string     { return "else_item" }
func (e *ElseItem) Accept(v Visitor) { v.VisitElseItem(e) }

type WhileStmt struct {
	Pos
	Cond Expr
	Body Stmt
}

func (s *WhileStmt) Kind() string     { return "while_stmt" }
func (s *WhileStmt) Accept(v Visitor) { v.VisitWhileStmt(s) }
func (s *WhileStmt) stmtNode()        {}

type DoStmt struct {
	Pos
	Body Stmt
	Cond Expr
}

func (s *DoStmt) Kind() string     { return "do_stmt" }
func (s *DoStmt) Accept(v Visitor) { v.VisitDoStmt(s) }
func (s *DoStmt) stmtNode()        {}

// ForStmt is the three-clause loop. Init is a *VarDecl or an Expr.
type ForStmt struct {
	Pos
	Init Node
	Cond Expr
	Step Expr
	Body Stmt
}

func (s *ForStmt) Kind() string     { return "for_stmt" }
func (s *ForStmt) Accept(v Visitor) { v.VisitForStmt(s) }
func (s *ForStmt) stmtNode()        {}

// ForInStmt iterates Expr binding Value (and optionally Key).
// for (k, v in list) ...
type ForInStmt struct {
	Pos
	Key   *Param
	Value *Param
	Expr  Expr
	Body  Stmt
}

func (s *ForInStmt) Kind() string     { return "for_in_stmt" }
func (s *ForInStmt) Accept(v Visitor) { v.VisitForInStmt(s) }
func (s *ForInStmt) stmtNode()        {}

type SwitchStmt struct {
	Pos
	Expr  Expr
	Cases []*CaseItem
}

func (s *SwitchStmt) Kind() string     { return "switch_stmt" }
func (s *SwitchStmt) Accept(v Visitor) { v.VisitSwitchStmt(s) }
func (s *SwitchStmt) stmtNode()        {}

// CaseItem is one arm of a switch. A nil Expr marks the default arm.
type CaseItem struct {
	Pos
	Expr Expr
	Body []Stmt
}

func (c *CaseItem) Kind() string     { return "case_item" }
func (c *CaseItem) Accept(v Visitor) { v.VisitCaseItem(c) }

type TryStmt struct {
	Pos
	Body    *Block
	Catches []*CatchItem
	Finally *Block
}

func (s *TryStmt) Kind() string     { return "try_stmt" }
func (s *TryStmt) Accept(v Visitor) { v.VisitTryStmt(s) }
func (s *TryStmt) stmtNode()        {}

// CatchItem binds Var to the thrown value when it matches one of Types.
// An empty Types list catches everything.
type CatchItem struct {
	Pos
	Types []*Name
	Var   string
	Body  *Block
}

func (c *CatchItem) Kind() string     { return "catch_item" }
func (c *CatchItem) Accept(v Visitor) { v.VisitCatchItem(c) }

type ReturnStmt struct {
	Pos
	Expr Expr
}

func (s *ReturnStmt) Kind() string     { return "return_stmt" }
func (s *ReturnStmt) Accept(v Visitor) { v.VisitReturnStmt(s) }
func (s *ReturnStmt) stmtNode()        {}

type ThrowStmt struct {
	Pos
	Expr Expr
}

func (s *ThrowStmt) Kind() string     { return "throw_stmt" }
func (s *ThrowStmt) Accept(v Visitor) { v.VisitThrowStmt(s) }
func (s *ThrowStmt) stmtNode()        {}

type BreakStmt struct {
	Pos
}

func (s *BreakStmt) Kind() string     { return "break_stmt" }
func (s *BreakStmt) Accept(v Visitor) { v.VisitBreakStmt(s) }
func (s *BreakStmt) stmtNode()        {}

type ContinueStmt struct {
	Pos
}

func (s *ContinueStmt) Kind() string     { return "continue_stmt" }
func (s *ContinueStmt) Accept(v Visitor) { v.VisitContinueStmt(s) }
func (s *ContinueStmt) stmtNode()        {}

type PrintStmt struct {
	Pos
	Args []Expr
}

func (s *PrintStmt) Kind() string     { return "print_stmt" }
func (s *PrintStmt) Accept(v Visitor) { v.VisitPrintStmt(s) }
func (s *PrintStmt) stmtNode()        {}
